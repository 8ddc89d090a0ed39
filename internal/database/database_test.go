package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/inspector/internal/database/repository"
)

func migratedDB(t *testing.T) (*sql.DB, string, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, dbPath, migrations
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	_, dbPath, migrations := migratedDB(t)
	require.NoError(t, RunMigrations(dbPath, migrations))

	v, dirty, err := SchemaVersion(dbPath, migrations)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(2), v)
}

func TestSeedDefaultsKeepsExistingAssets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _, _ := migratedDB(t)
	repo := repository.NewEntityRepo(db)

	seed := []repository.Entity{{Kind: "Spawner", Name: "goblin-camp", Payload: []byte(`{"Rate":2}`)}}
	require.NoError(t, SeedDefaults(ctx, db, seed))

	id := EntityID("Spawner", "goblin-camp")
	require.Equal(t, id, EntityID("Spawner", "goblin-camp"))
	require.NoError(t, repo.Upsert(ctx, repository.Entity{ID: id, Kind: "Spawner", Name: "goblin-camp", Payload: []byte(`{"Rate":9}`)}))

	require.NoError(t, SeedDefaults(ctx, db, seed))
	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.JSONEq(t, `{"Rate":9}`, string(got.Payload))
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _, _ := migratedDB(t)
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO entities(id, kind, name) VALUES ('x', 'Lamp', 'l')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities`).Scan(&n))
	require.Zero(t, n)
}

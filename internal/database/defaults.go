package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/inspector/internal/database/repository"
)

// EntityID is the stable id of the named entity of a kind.
func EntityID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("entity:"+kind+":"+name)).String()
}

// SeedDefaults inserts the given assets unless they already exist.
// It runs in one transaction, is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, defaults []repository.Entity) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewEntityRepo(db).WithTx(tx)
		for _, e := range defaults {
			if e.ID == "" {
				e.ID = EntityID(e.Kind, e.Name)
			}
			ok, err := repo.Exists(ctx, e.ID)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			if err := repo.Upsert(ctx, e); err != nil {
				return fmt.Errorf("seed %s/%s: %w", e.Kind, e.Name, err)
			}
		}
		return nil
	})
}

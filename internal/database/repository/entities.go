package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("entity not found")

// DBTX is the part of *sql.DB and *sql.Tx the repository uses.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EntityRepo stores persisted assets.
type EntityRepo struct {
	db   DBTX
	conn *sql.DB
}

func NewEntityRepo(db *sql.DB) *EntityRepo {
	return &EntityRepo{db: db, conn: db}
}

// Conn is the underlying database, for starting transactions.
func (r *EntityRepo) Conn() *sql.DB { return r.conn }

// WithTx returns a repo whose statements run in tx.
func (r *EntityRepo) WithTx(tx *sql.Tx) *EntityRepo {
	return &EntityRepo{db: tx, conn: r.conn}
}

// Upsert inserts e or replaces its name and payload, bumping the revision.
func (r *EntityRepo) Upsert(ctx context.Context, e Entity) error {
	payload := string(e.Payload)
	if payload == "" {
		payload = "{}"
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO entities(id, kind, name, payload, revision, created_at, updated_at)
	VALUES (?, ?, ?, ?, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 payload=excluded.payload,
	 revision=entities.revision + 1,
	 updated_at=CURRENT_TIMESTAMP;
	`, e.ID, e.Kind, e.Name, payload)
	if err != nil {
		return fmt.Errorf("upsert entity %s: %w", e.ID, err)
	}
	return nil
}

func (r *EntityRepo) Get(ctx context.Context, id string) (Entity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, kind, name, payload, revision, created_at, updated_at FROM entities WHERE id = ?`, id)
	e, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entity{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return e, err
}

func (r *EntityRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("exists %s: %w", id, err)
	}
	return n > 0, nil
}

// List returns entities of one kind, or all of them when kind is empty.
func (r *EntityRepo) List(ctx context.Context, kind string) ([]Entity, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, kind, name, payload, revision, created_at, updated_at
	FROM entities
	WHERE ? = '' OR kind = ?
	ORDER BY kind, name`, kind, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EntityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(s scanner) (Entity, error) {
	var e Entity
	var payload string
	if err := s.Scan(&e.ID, &e.Kind, &e.Name, &payload, &e.Revision, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return Entity{}, err
	}
	e.Payload = []byte(payload)
	return e, nil
}

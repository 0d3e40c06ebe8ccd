// internal/store/sqlite.go
//
// SQLite-backed implementation of the KV interface.
// One row per key in the kv table (see db.go for schema bootstrap).
// Upserts keep the latest value and stamp updated_at for diagnostics.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// sqliteKV persists keys in a SQLite kv table.
type sqliteKV struct {
	db *sql.DB
}

// NewSQLiteKV wraps an opened *sql.DB whose schema already contains the
// kv table.
func NewSQLiteKV(db *sql.DB) KV {
	return &sqliteKV{db: db}
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv (key, value, updated_at) VALUES (?,?,?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, now,
	)
	return err
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
	return err
}

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/listen/internal/dbx"
)

// SQLiteRepository implements Repository over the `defaults` table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM defaults WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get defaults[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO defaults (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set defaults[%s]: %w", key, err)
	}
	return nil
}

// DeleteKeys runs in its own transaction when the repository is bound to a
// *sql.DB, and inside the caller's transaction otherwise.
func (r *SQLiteRepository) DeleteKeys(ctx context.Context, keys ...string) error {
	del := func(ctx context.Context, q dbx.DBTX) error {
		for _, key := range keys {
			if _, err := q.ExecContext(ctx, `DELETE FROM defaults WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete defaults[%s]: %w", key, err)
			}
		}
		return nil
	}
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, del)
	}
	return del(ctx, r.db)
}

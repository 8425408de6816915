package store

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresBackend keeps one row per collection in the collections table.
// The column is JSON rather than JSONB so the stored text keeps its field order.
type PostgresBackend struct {
	DB *sql.DB
}

const createCollectionsTable = `
    CREATE TABLE IF NOT EXISTS collections (
        name       TEXT PRIMARY KEY,
        data       JSON NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )
`

// NewPostgresBackend makes sure the collections table exists
func NewPostgresBackend(ctx context.Context, db *sql.DB) (*PostgresBackend, error) {
	if _, err := db.ExecContext(ctx, createCollectionsTable); err != nil {
		return nil, err
	}
	return &PostgresBackend{DB: db}, nil
}

func (b *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = $1`

	var data []byte
	err := b.DB.QueryRowContext(ctx, query, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *PostgresBackend) Write(ctx context.Context, name string, data []byte) error {
	query := `
        INSERT INTO collections (name, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
    `
	_, err := b.DB.ExecContext(ctx, query, name, string(data))
	return err
}

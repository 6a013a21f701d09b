package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Postgres is a Store backed by a single documents table holding one
// jsonb value per key. Set is an upsert that replaces the whole value,
// matching the last-write-wins semantics of the document model.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres creates a PostgreSQL-backed document store
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM documents WHERE key = $1`

	var value []byte
	err := p.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO documents (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := p.db.ExecContext(ctx, query, key, value)
	return err
}

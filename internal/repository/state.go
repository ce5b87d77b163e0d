package repository

import (
	"context"
	"errors"
	"fmt"

	"redlenic/storefront/internal/state"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repository needs
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StateRepository persists key-value state in Postgres
type StateRepository interface {
	state.Storage
	EnsureSchema(ctx context.Context) error
}

type stateRepository struct {
	db DB
}

func NewStateRepository(db DB) StateRepository {
	return &stateRepository{
		db: db,
	}
}

// EnsureSchema creates the state table when missing
func (r *stateRepository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS storefront_state (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create storefront_state table: %w", err)
	}
	return nil
}

func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM storefront_state WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state %s: %w", key, err)
	}
	return data, nil
}

func (r *stateRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO storefront_state (key, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET data = $2, updated_at = now()`
	_, err := r.db.Exec(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}

	return nil
}

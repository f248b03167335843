package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
)

// PostgresTagRepository stores the user tag set in Postgres, for
// installations that sync the lexicon through a server.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new repository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

// EnsureSchema creates the user_tags table if missing.
func (r *PostgresTagRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_tags (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			state TEXT NOT NULL DEFAULT 'adopted',
			usage_count INTEGER NOT NULL DEFAULT 0,
			last_used_at TIMESTAMPTZ
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure user_tags schema: %w", err)
	}
	return nil
}

// Load reads the full tag set.
func (r *PostgresTagRepository) Load(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, state, usage_count, last_used_at
		FROM user_tags
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query user_tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var tag domain.Tag
		var state string
		var lastUsed *time.Time
		if err := rows.Scan(&tag.ID, &tag.Name, &state, &tag.UsageCount, &lastUsed); err != nil {
			return nil, err
		}
		tag.State = domain.TagState(state)
		tag.LastUsedAt = lastUsed
		tags = append(tags, tag)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return tags, nil
}

// Save replaces the persisted tag set with the given one, atomically.
func (r *PostgresTagRepository) Save(ctx context.Context, tags []domain.Tag) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_tags`); err != nil {
		return fmt.Errorf("clear user_tags: %w", err)
	}

	for _, tag := range tags {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_tags (id, name, state, usage_count, last_used_at)
			VALUES ($1, $2, $3, $4, $5)
		`, tag.ID, tag.Name, string(tag.State), tag.UsageCount, tag.LastUsedAt); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag.Name, err)
		}
	}

	return tx.Commit(ctx)
}

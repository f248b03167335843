package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
)

// SQLiteTagRepository stores the user tag set in SQLite.
type SQLiteTagRepository struct {
	db *sql.DB
}

// NewSQLiteTagRepository creates a new SQLite tag repository.
func NewSQLiteTagRepository(db *sql.DB) *SQLiteTagRepository {
	return &SQLiteTagRepository{db: db}
}

// Load reads the full tag set.
func (r *SQLiteTagRepository) Load(ctx context.Context) ([]domain.Tag, error) {
	query := `
		SELECT id, name, state, usage_count, last_used_at
		FROM user_tags
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query user_tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return tags, nil
}

// Save replaces the persisted tag set with the given one, atomically.
func (r *SQLiteTagRepository) Save(ctx context.Context, tags []domain.Tag) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_tags`); err != nil {
		return fmt.Errorf("clear user_tags: %w", err)
	}

	insert := `
		INSERT INTO user_tags (id, name, state, usage_count, last_used_at)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, tag := range tags {
		var lastUsed any
		if tag.LastUsedAt != nil {
			lastUsed = tag.LastUsedAt.UTC().Format(time.RFC3339Nano)
		}
		if _, err := tx.ExecContext(ctx, insert,
			tag.ID.String(),
			tag.Name,
			string(tag.State),
			tag.UsageCount,
			lastUsed,
		); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag.Name, err)
		}
	}

	return tx.Commit()
}

func scanTag(rows *sql.Rows) (domain.Tag, error) {
	var tag domain.Tag
	var idStr, stateStr string
	var lastUsedStr sql.NullString

	if err := rows.Scan(&idStr, &tag.Name, &stateStr, &tag.UsageCount, &lastUsedStr); err != nil {
		return tag, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return tag, fmt.Errorf("parse tag id: %w", err)
	}
	tag.ID = id
	tag.State = domain.TagState(stateStr)

	if lastUsedStr.Valid {
		lastUsed, err := time.Parse(time.RFC3339Nano, lastUsedStr.String)
		if err == nil {
			tag.LastUsedAt = &lastUsed
		}
	}

	return tag, nil
}

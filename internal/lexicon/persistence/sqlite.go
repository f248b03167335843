// Package persistence provides SQLite and Postgres backed tag
// repositories for the user lexicon.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// OpenSQLite opens (and creates if needed) the lexicon database at path,
// applies the standard pragmas and runs migrations.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL for concurrency, busy_timeout so a locked file waits instead
	// of failing, NORMAL sync as the safety/speed balance.
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping SQLite database: %w", err)
	}

	if err := RunSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// DefaultSQLitePath returns the default lexicon database location.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jotdown/lexicon.db"
	}
	return filepath.Join(home, ".jotdown", "lexicon.db")
}

// Package app wires the suggestion core together: lexicon persistence,
// scoring engines, event bus and session factory.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jotdown-app/jotdown/internal/eventbus"
	"github.com/jotdown-app/jotdown/internal/lexicon"
	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
	"github.com/jotdown-app/jotdown/internal/lexicon/persistence"
	"github.com/jotdown-app/jotdown/internal/linguistic"
	"github.com/jotdown-app/jotdown/internal/session"
	"github.com/jotdown-app/jotdown/internal/suggest/tags"
	"github.com/jotdown-app/jotdown/internal/suggest/template"
	"github.com/jotdown-app/jotdown/pkg/config"
)

// Container holds the wired application services.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *lexicon.Store
	Analyzer linguistic.Analyzer
	Bus      eventbus.Publisher

	sqliteDB *sql.DB
	pgxPool  *pgxpool.Pool
}

// NewContainer builds the service graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Analyzer: linguistic.NewHeuristicAnalyzer(),
	}

	repo, err := c.openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Store = lexicon.NewStore(repo, logger)

	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("connect event bus: %w", err)
		}
		c.Bus = publisher
	} else {
		c.Bus = eventbus.NewInProcessBus(logger)
	}

	return c, nil
}

// NewSession creates an evaluation session for a fresh memo draft.
func (c *Container) NewSession(ctx context.Context) *session.Session {
	cfg := session.Config{
		TagPolicy:      tags.ParsePolicy(c.Config.TagPolicy),
		TemplatePolicy: template.ParsePolicy(c.Config.TemplatePolicy),
		TagSettle:      c.Config.TagSettle,
		TemplateSettle: c.Config.TemplateSettle,
		Destinations: template.Destinations{
			Task: c.Config.TaskDestination,
			Note: c.Config.NoteDestination,
		},
	}
	return session.New(ctx, cfg, c.Store, c.Analyzer, c.Bus, c.Logger)
}

func (c *Container) openRepository(ctx context.Context, cfg *config.Config) (domain.TagRepository, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.pgxPool = pool
		repo := persistence.NewPostgresTagRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case "sqlite", "":
		db, err := persistence.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.sqliteDB = db
		return persistence.NewSQLiteTagRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

// Close releases held resources.
func (c *Container) Close() {
	if c.Bus != nil {
		if err := c.Bus.Close(); err != nil {
			c.Logger.Warn("event bus close failed", "error", err)
		}
	}
	if c.sqliteDB != nil {
		if err := c.sqliteDB.Close(); err != nil {
			c.Logger.Warn("sqlite close failed", "error", err)
		}
	}
	if c.pgxPool != nil {
		c.pgxPool.Close()
	}
}

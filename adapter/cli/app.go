// Package cli provides the cobra command surface for jotdown.
package cli

import (
	"log/slog"

	"github.com/jotdown-app/jotdown/internal/app"
)

var (
	appContainer *app.Container
	logger       *slog.Logger
)

// SetApp stores the wired container for commands to use.
func SetApp(c *app.Container) {
	appContainer = c
}

// GetApp returns the wired container, or nil when running without one.
func GetApp() *app.Container {
	return appContainer
}

// SetLogger stores the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

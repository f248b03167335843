// Package config loads application configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Suggestion policies
	TagPolicy      string
	TemplatePolicy string

	// Debounce settle windows
	TagSettle      time.Duration
	TemplateSettle time.Duration

	// Destinations
	TaskDestination string
	NoteDestination string

	// Lexicon persistence
	DatabaseDriver string // sqlite or postgres
	SQLitePath     string
	DatabaseURL    string

	// Event bus
	RabbitMQURL string
}

// Load loads configuration from environment variables, reading a .env
// file first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		TagPolicy:      getEnv("JOTDOWN_TAG_POLICY", "suggestOnly"),
		TemplatePolicy: getEnv("JOTDOWN_TEMPLATE_POLICY", "suggestOnly"),

		TagSettle:      getDurationEnv("JOTDOWN_TAG_SETTLE", 200*time.Millisecond),
		TemplateSettle: getDurationEnv("JOTDOWN_TEMPLATE_SETTLE", 300*time.Millisecond),

		TaskDestination: getEnv("JOTDOWN_TASK_DESTINATION", "tasks"),
		NoteDestination: getEnv("JOTDOWN_NOTE_DESTINATION", "notes"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		SQLitePath:     getEnv("JOTDOWN_SQLITE_PATH", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

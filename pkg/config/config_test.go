package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "suggestOnly", cfg.TagPolicy)
	assert.Equal(t, "suggestOnly", cfg.TemplatePolicy)
	assert.Equal(t, 200*time.Millisecond, cfg.TagSettle)
	assert.Equal(t, 300*time.Millisecond, cfg.TemplateSettle)
	assert.Equal(t, "tasks", cfg.TaskDestination)
	assert.Equal(t, "notes", cfg.NoteDestination)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JOTDOWN_TAG_POLICY", "autoAdopt")
	t.Setenv("JOTDOWN_TEMPLATE_POLICY", "off")
	t.Setenv("JOTDOWN_TAG_SETTLE", "150ms")
	t.Setenv("JOTDOWN_TEMPLATE_SETTLE", "1s")
	t.Setenv("JOTDOWN_TASK_DESTINATION", "inbox/tasks")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/jotdown")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "autoAdopt", cfg.TagPolicy)
	assert.Equal(t, "off", cfg.TemplatePolicy)
	assert.Equal(t, 150*time.Millisecond, cfg.TagSettle)
	assert.Equal(t, time.Second, cfg.TemplateSettle)
	assert.Equal(t, "inbox/tasks", cfg.TaskDestination)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost/jotdown", cfg.DatabaseURL)
	assert.Equal(t, "amqp://localhost", cfg.RabbitMQURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MalformedDurationFallsBack(t *testing.T) {
	t.Setenv("JOTDOWN_TAG_SETTLE", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.TagSettle)
}

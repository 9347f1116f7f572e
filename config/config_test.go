package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/analytics")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "analytics-engine", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, 15*time.Second, cfg.App.ShutdownTimeout)

	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.RateLimitEnabled)
	assert.Equal(t, 120, cfg.HTTP.RateLimitPerMinute)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.True(t, cfg.Observability.MetricsEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/analytics")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_DISABLED", "true")
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Disabled)
	assert.Equal(t, 30*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{Environment: "weird"},
		HTTP: HTTPConfig{Port: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
	assert.ErrorContains(t, err, "HTTP_PORT")
	assert.ErrorContains(t, err, "APP_ENV")
}

func TestMalformedEnvValuesFallBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/analytics")
	t.Setenv("HTTP_PORT", "not-a-number")
	t.Setenv("APP_DEBUG", "maybe")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/store"
)

func TestLoadSite_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := config.LoadSite()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.MigrateOnStart)
	assert.False(t, cfg.Admin.Enabled())
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 3, cfg.Postgres.RetryAttempts)
	assert.Equal(t, 365*24*time.Hour, cfg.Retention.MaxAge)
	assert.Equal(t, "@daily", cfg.Retention.Schedule)

	_, ok := cfg.Dialect()
	assert.False(t, ok)
}

func TestLoadSite_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SQLITE_PATH", "/tmp/contact.db")
	t.Setenv("CONTACT_RELAY_URL", "https://relay.example/send-contact-email")
	t.Setenv("CONTACT_RELAY_API_KEY", "anon")
	t.Setenv("ADMIN_USERNAME", "andres")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("CONTACT_RATE_LIMIT_RPS", "1.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadSite()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://relay.example/send-contact-email", cfg.Relay.URL)
	assert.Equal(t, "anon", cfg.Relay.APIKey)
	assert.True(t, cfg.Admin.Enabled())
	assert.InDelta(t, 1.5, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, "debug", cfg.Logger.Level)

	dialect, ok := cfg.Dialect()
	require.True(t, ok)
	assert.Equal(t, store.DialectSQLite, dialect)
}

func TestSite_PostgresWinsOverSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portafolio")
	t.Setenv("SQLITE_PATH", "/tmp/contact.db")

	cfg, err := config.LoadSite()
	require.NoError(t, err)

	dialect, ok := cfg.Dialect()
	require.True(t, ok)
	assert.Equal(t, store.DialectPostgres, dialect)
}

func TestLoadSite_InvalidValue(t *testing.T) {
	t.Setenv("MIGRATE_ON_START", "maybe")

	_, err := config.LoadSite()
	require.Error(t, err)
}

func TestLoadRelay(t *testing.T) {
	t.Setenv("RESEND_API_KEY", " re_123 ")
	t.Setenv("CONTACT_TO_EMAIL", "owner@example.com")
	t.Setenv("CONTACT_FROM_EMAIL", "")
	t.Setenv("ALLOWED_ORIGINS", "https://andresaoe.dev, ,https://www.andresaoe.dev")

	cfg, err := config.LoadRelay()
	require.NoError(t, err)

	h := cfg.Handler()
	assert.Equal(t, "re_123", h.ProviderKey)
	assert.Equal(t, "owner@example.com", h.ToEmail)
	assert.Equal(t, config.DefaultFromEmail, h.FromEmail)
	assert.Equal(t, []string{"https://andresaoe.dev", "https://www.andresaoe.dev"}, h.AllowedOrigins)
	assert.Equal(t, "8081", cfg.Port)
}

func TestParseOrigins(t *testing.T) {
	t.Parallel()

	assert.Nil(t, config.ParseOrigins(""))
	assert.Nil(t, config.ParseOrigins(" , "))
	assert.Equal(t, []string{"*"}, config.ParseOrigins("*"))
}

// Package config loads the environment of the two processes: the portfolio site and the
// contact relay. Component configs carry their own env tags and are nested here.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/andresaoe/portafolio/internal/logger"
	"github.com/andresaoe/portafolio/internal/mailer/resend"
	"github.com/andresaoe/portafolio/internal/middleware"
	"github.com/andresaoe/portafolio/internal/notify"
	"github.com/andresaoe/portafolio/internal/relay"
	"github.com/andresaoe/portafolio/internal/retention"
	"github.com/andresaoe/portafolio/internal/store"
	"github.com/andresaoe/portafolio/internal/telemetry"
)

const DefaultFromEmail = "onboarding@resend.dev"

// Site is the configuration of the serve command.
type Site struct {
	Port           string `env:"PORT" envDefault:"8080"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	Logger    logger.Config
	Telemetry telemetry.Config
	Postgres  store.PostgresConfig
	SQLite    store.SQLiteConfig
	Relay     notify.Config
	RateLimit middleware.RateLimitConfig
	Retention retention.Config
	Admin     Admin
}

type Admin struct {
	Username   string        `env:"ADMIN_USERNAME"`
	Password   string        `env:"ADMIN_PASSWORD"`
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"24h"`
}

// Enabled is true only when both credentials are set. There are no default credentials.
func (a Admin) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

// Dialect picks the store backend: DATABASE_URL wins over SQLITE_PATH. ok is false when
// neither is set.
func (s Site) Dialect() (store.Dialect, bool) {
	switch {
	case s.Postgres.ConnectionString != "":
		return store.DialectPostgres, true
	case s.SQLite.Path != "":
		return store.DialectSQLite, true
	}
	return "", false
}

// Relay is the configuration of the relay command.
type Relay struct {
	Port           string `env:"RELAY_PORT" envDefault:"8081"`
	ToEmail        string `env:"CONTACT_TO_EMAIL"`
	FromEmail      string `env:"CONTACT_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	Logger    logger.Config
	Telemetry telemetry.Config
	Resend    resend.Config
}

// Handler converts the environment into the relay handler's configuration.
func (r Relay) Handler() relay.Config {
	from := strings.TrimSpace(r.FromEmail)
	if from == "" {
		from = DefaultFromEmail
	}
	return relay.Config{
		ProviderKey:    strings.TrimSpace(r.Resend.APIKey),
		ToEmail:        strings.TrimSpace(r.ToEmail),
		FromEmail:      from,
		AllowedOrigins: ParseOrigins(r.AllowedOrigins),
	}
}

// ParseOrigins splits a comma separated allow-list, dropping blanks.
func ParseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func LoadSite() (Site, error) {
	var cfg Site
	if err := env.Parse(&cfg); err != nil {
		return Site{}, fmt.Errorf("failed to parse site config: %w", err)
	}
	return cfg, nil
}

func LoadRelay() (Relay, error) {
	var cfg Relay
	if err := env.Parse(&cfg); err != nil {
		return Relay{}, fmt.Errorf("failed to parse relay config: %w", err)
	}
	return cfg, nil
}

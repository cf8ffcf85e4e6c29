package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/logger"
	"github.com/andresaoe/portafolio/internal/notify"
	"github.com/andresaoe/portafolio/internal/profile"
	"github.com/andresaoe/portafolio/internal/retention"
	"github.com/andresaoe/portafolio/internal/store"
	"github.com/andresaoe/portafolio/internal/submit"
	"github.com/andresaoe/portafolio/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio site and its contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSite()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides PORT")
	return cmd
}

func serve(ctx context.Context, cfg config.Site) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	setGinMode(cfg.Logger)

	tracing, err := telemetry.Init(ctx, "portafolio-site", cfg.Telemetry, log)
	if err != nil {
		return err
	}

	st, backend := openBackend(ctx, cfg, log)

	srv, hooks, err := newSiteServer(ctx, cfg, log, st, backend)
	if err != nil {
		_ = tracing.Shutdown(ctx)
		return err
	}
	return runServer(ctx, srv, log, append([]shutdownHook{tracing.Shutdown}, hooks...)...)
}

// newSiteServer wires everything that depends on the store. When it fails the store is
// closed before returning; on success closing it is left to the returned hooks.
func newSiteServer(ctx context.Context, cfg config.Site, log *slog.Logger, st store.Store, backend submit.Backend) (_ *http.Server, _ []shutdownHook, err error) {
	if st != nil {
		defer func() {
			if err == nil {
				return
			}
			if cerr := st.Close(); cerr != nil {
				log.Error("failed to close contact store", slog.Any("error", cerr))
			}
		}()
	}

	opts := []submit.Option{submit.WithLogger(log)}
	if cfg.Relay.Configured() {
		client, err := notify.New(cfg.Relay, nil)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, submit.WithNotifier(client))
	} else {
		log.Warn("CONTACT_RELAY_URL is not set, contact messages will be stored without notification")
	}

	s := &site{
		profile:   profile.Default(),
		pipeline:  submit.NewPipeline(backend, opts...),
		store:     st,
		rateLimit: cfg.RateLimit,
		logger:    log,
	}
	if cfg.Admin.Enabled() && st != nil {
		s.admin, err = newAdminHandler(cfg.Admin, st, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("admin inbox available at /admin/login")
	}

	router, err := s.router()
	if err != nil {
		return nil, nil, err
	}

	var job *retention.Job
	if st != nil && cfg.Retention.Enabled() {
		job, err = retention.New(cfg.Retention, st, log)
		if err != nil {
			return nil, nil, err
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var hooks []shutdownHook
	if job != nil {
		job.Start(ctx)
		hooks = append(hooks, job.Stop)
	}
	if st != nil {
		hooks = append(hooks, func(context.Context) error { return st.Close() })
	}
	return srv, hooks, nil
}

// openBackend builds the contact_messages store. A missing or unreachable database leaves the
// site running with an Unavailable backend so the form reports the configuration problem.
func openBackend(ctx context.Context, cfg config.Site, log *slog.Logger) (store.Store, submit.Backend) {
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("contact store unavailable", slog.Any("error", err))
		return nil, submit.Unavailable{Reason: err.Error()}
	}
	return st, submit.Available{Store: st}
}

var errNoDatabase = errors.New("neither DATABASE_URL nor SQLITE_PATH is set")

func openStore(ctx context.Context, cfg config.Site, log *slog.Logger) (store.Store, error) {
	dialect, ok := cfg.Dialect()
	if !ok {
		return nil, errNoDatabase
	}

	switch dialect {
	case store.DialectPostgres:
		pool, err := store.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			// The insert error mapping reports a missing table, so a failed migration is not fatal.
			if err := store.MigratePostgres(ctx, pool, log); err != nil {
				log.Error("failed to migrate contact store", slog.Any("error", err))
			}
		}
		return store.NewPostgres(pool), nil

	case store.DialectSQLite:
		db, err := store.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			if err := store.Migrate(ctx, db.DB(), store.DialectSQLite, log); err != nil {
				log.Error("failed to migrate contact store", slog.Any("error", err))
			}
		}
		return db, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrUnknownDialect, dialect)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/logger"
	"github.com/andresaoe/portafolio/internal/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the contact_messages table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSite()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return migrate(ctx, cfg)
		},
	}
}

func migrate(ctx context.Context, cfg config.Site) error {
	log, closer, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	dialect, ok := cfg.Dialect()
	if !ok {
		return errNoDatabase
	}

	switch dialect {
	case store.DialectPostgres:
		pool, err := store.Connect(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()
		return store.MigratePostgres(ctx, pool, log)

	case store.DialectSQLite:
		db, err := store.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		return store.Migrate(ctx, db.DB(), store.DialectSQLite, log)
	}
	return fmt.Errorf("%w: %s", store.ErrUnknownDialect, dialect)
}

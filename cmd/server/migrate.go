package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

var errNotPostgres = errors.New("migrations require database.driver=postgres")

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage the PostgreSQL schema with the migrations embedded in the binary (up, down, version).",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending up migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *postgres.Migrator) error { return m.Up() })
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *postgres.Migrator) error { return m.Down() })
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return err
			})
		},
	})

	return migrateCmd
}

func withMigrator(opts *rootOptions, fn func(*postgres.Migrator) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return errNotPostgres
	}

	logger := logging.WithService(
		logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr),
		cfg.Telemetry.ServiceName, cfg.Database.Driver,
	)

	m, err := postgres.NewMigrator(cfg.Database.DSN, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			logger.Error("closing migrator", slog.Any("error", closeErr))
		}
	}()

	return fn(m)
}

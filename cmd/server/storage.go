package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/memory"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// storage is the store backend selected by database.driver. The injector
// calls Shutdown when the serve command exits.
type storage struct {
	todos    ports.TodoStore
	accounts ports.AccountStore
	checker  ports.HealthChecker
	close    func() error
}

// Shutdown releases the backend's connections.
func (s *storage) Shutdown() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func openStorage(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		db, err := memory.New()
		if err != nil {
			return nil, err
		}
		logger.Warn("using the in-memory store; data is lost on restart")
		return &storage{todos: db.Todos(), accounts: db.Accounts(), checker: db}, nil

	case config.DriverPostgres:
		if cfg.MigrateOnStart {
			if err := migrateUp(cfg.DSN, logger); err != nil {
				return nil, err
			}
		}

		db, err := postgres.Open(ctx, cfg, metrics, logger)
		if err != nil {
			return nil, err
		}
		return &storage{todos: db.Todos(), accounts: db.Accounts(), checker: db, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func migrateUp(dsn string, logger *slog.Logger) (err error) {
	m, err := postgres.NewMigrator(dsn, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing migrator: %w", closeErr)
		}
	}()

	return m.Up()
}

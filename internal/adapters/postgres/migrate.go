package postgres

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator applies the embedded schema migrations. It owns its own
// connection, which Close releases.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator connects to the database at dsn and prepares the embedded
// migrations.
func NewMigrator(dsn string, logger *slog.Logger) (*Migrator, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	x, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	driver, err := migratepg.WithInstance(x.DB, &migratepg.Config{})
	if err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("creating migration instance: %w", err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies all pending migrations. Being already up to date is not an
// error.
func (g *Migrator) Up() error {
	return g.apply("up", g.m.Up)
}

// Down reverts all applied migrations.
func (g *Migrator) Down() error {
	return g.apply("down", g.m.Down)
}

// Version returns the applied schema version. A database without any
// applied migration reports version 0.
func (g *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = g.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading migration version: %w", err)
	}
	return version, dirty, nil
}

// Close releases the source and the database connection.
func (g *Migrator) Close() error {
	srcErr, dbErr := g.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (g *Migrator) apply(direction string, fn func() error) error {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		g.logger.Info("no migrations to run", slog.String("direction", direction))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrating %s: %w", direction, err)
	}

	g.logger.Info("migration completed", slog.String("direction", direction))
	return nil
}

// Package postgres implements the store ports on PostgreSQL using sqlx and
// lib/pq, with schema migrations managed by golang-migrate.
//
// Every store operation runs through the same pipeline:
//
//	Circuit Breaker → OTEL Span → SQL → Metrics
//
// Construction:
//
//	db, err := postgres.Open(ctx, &cfg.Database, metrics, logger)
//	defer db.Close()
//	todos, accounts := db.Todos(), db.Accounts()
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

const (
	driverName = "postgres"
	tracerName = "postgres"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*DB)(nil)

// DB is an instrumented PostgreSQL handle shared by the todo and account
// stores.
type DB struct {
	x       *sqlx.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects to PostgreSQL, applies the pool settings and waits until the
// server answers a ping, retrying with exponential backoff. If metrics is nil,
// metric recording is skipped.
func Open(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*DB, error) {
	x, err := sqlx.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	x.SetMaxOpenConns(cfg.MaxOpenConns)
	x.SetMaxIdleConns(cfg.MaxIdleConns)
	x.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	x.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := pingWithRetry(ctx, x, newRetryPolicy(cfg.ConnectRetry), logger); err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return New(x, cfg.CircuitBreaker, metrics, logger), nil
}

// New wraps an existing connection. Not-found and conflict outcomes do not
// count as breaker failures; only infrastructure errors do.
func New(x *sqlx.DB, cbCfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *DB {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "postgres",
		MaxRequests: toUint32(cbCfg.HalfOpenLimit),
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cbCfg.MaxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &DB{x: x, breaker: cb, metrics: metrics, logger: logger}
}

// Todos returns the todo store backed by this connection.
func (d *DB) Todos() *TodoStore {
	return &TodoStore{db: d}
}

// Accounts returns the account store backed by this connection.
func (d *DB) Accounts() *AccountStore {
	return &AccountStore{db: d}
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.x.Close()
}

// Name returns the health check component name.
func (d *DB) Name() string {
	return "postgres"
}

// HealthCheck reports the circuit breaker state and, when the breaker is
// closed, pings the server.
func (d *DB) HealthCheck(ctx context.Context) error {
	state := d.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		if err := d.x.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: unreachable: %w", err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("postgres: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("postgres: failing (circuit breaker open)")
	default:
		return fmt.Errorf("postgres: unknown circuit breaker state %v", state)
	}
}

// run executes fn as the named store operation.
func (d *DB) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation.name", operation),
		),
	)
	defer span.End()

	_, err := d.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w", operation, err)
	}

	if err != nil && isBreakerFailure(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	d.metrics.RecordDBOperation(ctx, operation, start, err)

	return err
}

// isBreakerSuccess reports whether err leaves the breaker's failure count
// untouched. Expected outcomes and caller cancellation are not failures.
func isBreakerSuccess(err error) bool {
	return err == nil || !isBreakerFailure(err)
}

func isBreakerFailure(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

// toUint32 converts a non-negative int to uint32, clamping at the bounds.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > int(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/todolist-service/internal/adapters/http"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todolist-service/internal/app"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/password"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolist-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start the HTTP API server and block until SIGINT or SIGTERM, then drain in-flight requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.WithService(
		logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr),
		cfg.Telemetry.ServiceName, cfg.Database.Driver,
	)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		// Flush telemetry.
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()

		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	defer func() {
		// Close store connections once the server has drained.
		if err := do.Shutdown[*storage](injector); err != nil {
			logger.Error("store shutdown error", slog.Any("error", err))
		}
	}()

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*storage](injector).checker)

	logger.Info("starting todolist service",
		slog.String("addr", server.Addr()),
		slog.String("store", cfg.Database.Driver),
	)

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storage, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openStorage(ctx, &cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		return do.MustInvoke[*storage](i).todos, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountStore, error) {
		return do.MustInvoke[*storage](i).accounts, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return password.New(cfg.Password.BcryptCost), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		todos := do.MustInvoke[ports.TodoStore](i)
		accounts := do.MustInvoke[ports.AccountStore](i)
		return app.NewTodoService(todos, accounts, time.Now, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		accounts := do.MustInvoke[ports.AccountStore](i)
		hasher := do.MustInvoke[ports.PasswordHasher](i)
		return app.NewAccountService(accounts, hasher, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Server.HealthTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AccountHandler, error) {
		svc := do.MustInvoke[ports.AccountService](i)
		return handlers.NewAccountHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Todo:    do.MustInvoke[*handlers.TodoHandler](i),
			Account: do.MustInvoke[*handlers.AccountHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			[]func(nethttp.Handler) nethttp.Handler{
				middleware.RateLimit(cfg.RateLimit),
			},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// Package main is the entry point for the task tracker. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/task-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/persistence/guard"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/persistence/memory"

	"github.com/jsamuelsen11/task-tracker/internal/app"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-tracker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 3 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut := logging.Output(logging.FileOptions{
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	}, os.Stderr)
	if c, ok := logOut.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.scrape)

	// Resolve the server (eagerly wires the full graph, including the
	// database connection for SQL drivers).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		closeStore(injector, logger)
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	logger.Info("task store ready", slog.String("driver", cfg.Database.Driver))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeStore(injector, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeStore(injector, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// closeStore releases the database connection pool when a SQL driver is in
// use. It is a no-op for the in-memory store.
func closeStore(injector do.Injector, logger *slog.Logger) {
	store, err := do.Invoke[*gormstore.Store](injector)
	if err != nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled; scrape is set only for the prometheus exporter.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
	scrape  nethttp.Handler
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

	mp, scrape, err := telemetry.InitMeter(ctx,
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
		scrape:  scrape,
	}, nil
}

// repositories is the pair of persistence ports the services depend on.
type repositories struct {
	lists ports.TaskListRepository
	tasks ports.TaskRepository
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, scrape nethttp.Handler) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	registerPersistence(injector, cfg, logger)

	do.Provide(injector, func(i do.Injector) (ports.TaskListService, error) {
		repos, err := do.Invoke[*repositories](i)
		if err != nil {
			return nil, err
		}
		return app.NewTaskListService(repos.lists, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		repos, err := do.Invoke[*repositories](i)
		if err != nil {
			return nil, err
		}
		return app.NewTaskService(repos.tasks, repos.lists, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskListHandler, error) {
		svc, err := do.Invoke[ports.TaskListService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewTaskListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc, err := do.Invoke[ports.TaskService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH, err := do.Invoke[*handlers.TaskListHandler](i)
		if err != nil {
			return nil, err
		}
		taskH, err := do.Invoke[*handlers.TaskHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)

		return adapthttp.NewRouter(listH, taskH, healthH, adapthttp.RouterOptions{
			ServiceName:    cfg.Telemetry.ServiceName,
			Logger:         logger,
			Metrics:        do.MustInvoke[*telemetry.Metrics](i),
			MetricsHandler: scrape,
			RequestTimeout: cfg.Server.RequestTimeout,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerPersistence provides the repositories for the configured driver.
// SQL stores are wrapped by the guard and both are registered as readiness
// checks.
func registerPersistence(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Database.Driver == config.DriverMemory {
		do.Provide(injector, func(_ do.Injector) (*repositories, error) {
			store := memory.NewStore()
			return &repositories{lists: store.TaskLists(), tasks: store.Tasks()}, nil
		})
		return
	}

	do.Provide(injector, func(_ do.Injector) (*gormstore.Store, error) {
		return gormstore.Open(context.Background(), gormConfig(&cfg.Database), logger)
	})

	do.Provide(injector, func(i do.Injector) (*repositories, error) {
		store, err := do.Invoke[*gormstore.Store](i)
		if err != nil {
			return nil, err
		}

		g := guard.New(&cfg.Database, cfg.Database.Driver, do.MustInvoke[*telemetry.Metrics](i), logger)

		registry := do.MustInvoke[ports.HealthRegistry](i)
		registry.Register(store)
		registry.Register(g)

		return &repositories{
			lists: g.TaskLists(store.TaskLists()),
			tasks: g.Tasks(store.Tasks()),
		}, nil
	})
}

func gormConfig(db *config.DatabaseConfig) gormstore.Config {
	return gormstore.Config{
		Driver:          db.Driver,
		DSN:             db.DSN,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		AutoMigrate:     db.AutoMigrate,
		LogLevel:        db.LogLevel,
		SlowThreshold:   db.SlowThreshold,
	}
}

// Package guard decorates the repository ports with a circuit breaker, an
// optional rate limiter, read retries with exponential backoff, OpenTelemetry
// client spans and operation metrics.
//
// Each call flows through:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry (reads only) → Repository
//
// Construction:
//
//	g := guard.New(&cfg.Database, "database", metrics, logger)
//	lists := g.TaskLists(store.TaskLists())
//	tasks := g.Tasks(store.Tasks())
//
// Not-found results count as successes for the breaker. An open breaker
// surfaces as domain.ErrUnavailable.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Guard holds the resilience and instrumentation state shared by the
// repository decorators it builds.
type Guard struct {
	name     string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a Guard. The name identifies the backing store in traces,
// metrics and health output. If metrics is nil, metric recording is skipped.
func New(cfg *config.DatabaseConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	logger = logging.OrDiscard(logger)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	maxAttempts := cfg.Retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Guard{
		name:    name,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     maxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Name returns the store identifier (e.g., "database").
func (g *Guard) Name() string {
	return g.name
}

// HealthCheck reports availability from the circuit breaker state without
// touching the store.
//
// State mapping:
//   - "closed"   : store is operating normally; returns nil.
//   - "half-open": breaker is probing recovery; returns a degraded error.
//   - "open"     : breaker is rejecting calls; returns a failing error.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

// call describes one repository invocation.
type call struct {
	operation string // e.g. "task_lists.find_by_id"
	table     string
	read      bool
}

// execute runs fn through the breaker, limiter, span and retry pipeline.
// Writes are attempted once.
func execute[T any](ctx context.Context, g *Guard, c call, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	var out T
	_, err := g.breaker.Execute(func() (struct{}, error) {
		if err := g.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := g.startSpan(ctx, c)
		defer span.End()

		attempts := 1
		if c.read {
			attempts = g.retryCfg.maxAttempts
		}

		var callErr error
		out, callErr = withRetry(spanCtx, g, c, attempts, fn)
		finishSpan(span, callErr)

		return struct{}{}, callErr
	})

	g.recordMetrics(ctx, c, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		var zero T
		return zero, fmt.Errorf("%s %s: %w: %w", g.name, c.operation, domain.ErrUnavailable, err)
	}
	return out, err
}

// waitForRateLimit blocks until the limiter allows the call or the context
// is canceled. Returns nil immediately when rate limiting is disabled.
func (g *Guard) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

func (g *Guard) startSpan(ctx context.Context, c call) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("persistence")

	return tracer.Start(ctx, "DB "+c.operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.name),
			attribute.String("db.operation", c.operation),
			attribute.String("db.collection", c.table),
		),
	)
}

// finishSpan records the outcome on the span. Not-found is a normal result.
func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records operation duration and count. Metrics are recorded
// outside the breaker so that circuit-open rejections are captured. Safe to
// call with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, c call, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(c.operation),
		telemetry.AttrDBTable.String(c.table),
		telemetry.AttrResult.String(result),
	)

	g.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

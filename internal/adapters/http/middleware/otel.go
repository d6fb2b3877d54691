package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
)

// routeUnmatched labels requests that no route matched, keeping metric
// cardinality bounded.
const routeUnmatched = "unmatched"

// OpenTelemetry returns middleware that traces each request with otelchi and
// records server request metrics. Spans are named after the chi route pattern
// of routes (for example "/task-lists/{id}") rather than the raw path. W3C
// Trace Context is extracted from incoming headers by the global propagator.
//
// If metrics is nil, metric recording is skipped.
func OpenTelemetry(serverName string, routes chi.Routes, metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracing := otelchi.Middleware(serverName, otelchi.WithChiRoutes(routes))

	return func(next http.Handler) http.Handler {
		return tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			span := trace.SpanFromContext(ctx)
			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("http.request.id", id))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			status := rw.statusCode
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, routePattern(r), start, status)
		}))
	}
}

// routePattern returns the matched chi route pattern, or routeUnmatched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return routeUnmatched
}

// recordServerMetrics records server request duration and count metrics.
// Safe to call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, duration, attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}

package ports

import "context"

// HealthChecker reports whether one dependency can serve traffic.
type HealthChecker interface {
	// Name keys the checker's result in the readiness response,
	// e.g. "database".
	Name() string

	// HealthCheck returns nil when healthy. It must honour ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns each result by name; a nil
	// entry means healthy.
	CheckAll(ctx context.Context) map[string]error
}

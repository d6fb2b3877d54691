package guard

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// withRetry runs fn up to attempts times, backing off between tries while
// the error is retryable.
func withRetry[T any](ctx context.Context, g *Guard, c call, attempts int, fn func(context.Context) (T, error)) (T, error) {
	var (
		out     T
		lastErr error
	)

	for attempt := range attempts {
		if attempt > 0 {
			if err := g.waitForRetry(ctx, c, attempt, lastErr); err != nil {
				return out, err
			}
		}

		out, lastErr = fn(ctx)
		if !isRetryable(lastErr) {
			return out, lastErr
		}
	}

	return out, lastErr
}

// waitForRetry logs the retry at WARN level and waits for the backoff delay
// or context cancellation.
func (g *Guard) waitForRetry(ctx context.Context, c call, attempt int, lastErr error) error {
	delay := backoff(attempt, g.retryCfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying persistence call",
		slog.String("operation", c.operation),
		slog.String("store", g.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", g.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a repository error may succeed on another try.
// Domain outcomes and context cancellation are final; anything else is
// treated as a transient store failure.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrValidation)
}

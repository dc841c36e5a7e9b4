package postgres

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// pinger is the part of *sqlx.DB used while waiting for the server.
type pinger interface {
	PingContext(ctx context.Context) error
}

// pingWithRetry pings until the server answers, the attempts run out or ctx
// is done. Retries back off exponentially with ±25% jitter.
func pingWithRetry(ctx context.Context, p pinger, policy retryPolicy, logger *slog.Logger) error {
	if policy.maxAttempts <= 0 {
		return fmt.Errorf("postgres: max attempts must be >= 1, got %d", policy.maxAttempts)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var lastErr error

	for attempt := range policy.maxAttempts {
		if attempt > 0 {
			delay := backoff(attempt, policy)
			logger.WarnContext(ctx, "retrying database ping",
				slog.String("operation", "postgres.Open"),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", policy.maxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = p.PingContext(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
	}

	return lastErr
}

// backoff calculates the delay for a given retry attempt. The attempt
// parameter is 1-indexed (attempt 1 is the first retry).
func backoff(attempt int, policy retryPolicy) time.Duration {
	delay := float64(policy.initialInterval) * math.Pow(policy.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(policy.maxInterval) {
		delay = float64(policy.maxInterval)
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

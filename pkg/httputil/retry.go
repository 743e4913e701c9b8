package httputil

import (
	"context"
	"errors"
	"time"
)

// Registry lookups share one retry policy. Maven Central and the GitHub API
// both throttle bursts, so the initial delay is long enough that a second
// attempt usually lands outside the rate-limit window.
const (
	DefaultAttempts  = 3
	DefaultBaseDelay = time.Second
)

// RetryableError marks an error as transient. Wrap network timeouts and
// 5xx responses with it so that [Retry] tries the operation again;
// anything else fails fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between attempts.
// Only errors wrapped in [RetryableError] are retried; other errors return
// immediately. When the context is cancelled mid-wait, ctx.Err() is
// returned instead of the last fetch error.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff applies the shared registry policy: [DefaultAttempts]
// attempts starting at [DefaultBaseDelay].
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, DefaultAttempts, DefaultBaseDelay, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

package utils

import (
	"context"
	"time"
)

// RetryPolicy bounds repeated attempts of an operation whose failures can be
// classified as retryable. The policy itself holds no state, so a single
// value can serve concurrent callers.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Backoff returns the delay before attempt n+1, given that n attempts
	// have already failed (n starts at 1).
	Backoff func(failed int) time.Duration
	// Sleep waits for d or until ctx is done. Tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy allows two retries with a backoff of 2s, then 4s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff: func(failed int) time.Duration {
			return time.Duration(failed) * 2 * time.Second
		},
	}
}

// Do runs op until it succeeds, fails with a non-retryable error, the context
// is cancelled, or MaxAttempts is reached. The last error is returned on
// exhaustion. Attempts are strictly sequential.
func (p RetryPolicy) Do(ctx context.Context, retryable func(error) bool, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, p.Backoff(attempt-1)); err != nil {
				return lastErr
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

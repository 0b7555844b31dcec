package services

import (
	"context"
	"fmt"
	"math"
	"time"
)

// BackoffFunc returns the delay to wait after a failed attempt (1-based).
type BackoffFunc func(attempt int) time.Duration

// LinearBackoff grows the delay by base per attempt: base, 2*base, 3*base.
func LinearBackoff(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// ExponentialBackoff grows the delay by factor^attempt * base.
func ExponentialBackoff(base time.Duration, factor float64) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(math.Pow(factor, float64(attempt)) * float64(base))
	}
}

// RetryPolicy is the shared retry behavior for flaky provider calls. Sleep
// is injectable so tests do not wait out real backoff delays.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     BackoffFunc
	Sleep       func(ctx context.Context, d time.Duration) error

	// DelayAfterLast applies the backoff delay after the final failed
	// attempt too, before the exhaustion error is returned.
	DelayAfterLast bool
}

func NewRetryPolicy(maxAttempts int, backoff BackoffFunc) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     backoff,
		Sleep:       sleepContext,
	}
}

// Do runs op until it succeeds or MaxAttempts failures accumulate. The
// backoff delay is applied between attempts, and after the last one only
// when DelayAfterLast is set. The exhaustion error carries the attempt
// count and the last underlying error.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := op(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if (attempt < p.MaxAttempts || p.DelayAfterLast) && p.Backoff != nil {
			if err := sleep(ctx, p.Backoff(attempt)); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package fmcsa

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carrier_desk/pkg/logx"
)

const (
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = 500 * time.Millisecond
	DefaultMaxBackoff     = 4 * time.Second
	DefaultMultiplier     = 2.0
)

// RetryPolicy retries a call with exponential backoff while Retryable
// accepts the error. The zero value makes a single attempt.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	Retryable      func(error) bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    DefaultMaxAttempts,
		InitialBackoff: DefaultInitialBackoff,
		MaxBackoff:     DefaultMaxBackoff,
		Multiplier:     DefaultMultiplier,
		Retryable:      IsRetryable,
	}
}

// NoRetry makes exactly one attempt.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// Backoff is the pause after the given failed attempt, counting from 1.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	backoff := float64(p.InitialBackoff)
	for i := 1; i < attempt; i++ {
		backoff *= multiplier
		if p.MaxBackoff > 0 && backoff >= float64(p.MaxBackoff) {
			return p.MaxBackoff
		}
	}

	return time.Duration(backoff)
}

// Do calls fn until it succeeds, fails with a non-retryable error, attempts
// run out or ctx is done. The last error is returned as is.
func (p RetryPolicy) Do(ctx context.Context, fn func(context.Context) error) error {
	attempts := max(p.MaxAttempts, 1)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if attempt == attempts || p.Retryable == nil || !p.Retryable(err) {
			return err
		}

		backoff := p.Backoff(attempt)

		logger(ctx).Warn("registry call failed, retrying",
			slog.Int(logx.FieldAttempt, attempt),
			slog.Int64(logx.FieldBackoffMs, backoff.Milliseconds()),
			logx.Error(err),
		)

		if sleepErr := sleep(ctx, backoff); sleepErr != nil {
			return fmt.Errorf("%w (retry aborted: %w)", err, sleepErr)
		}
	}

	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	case <-timer.C:
		return nil
	}
}

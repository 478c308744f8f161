// Package retry provides an explicit retrying call wrapper with an
// exponential backoff schedule and a classifier of retryable errors.
package retry

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	DEFAULT_MAX_ATTEMPTS = 3
	DEFAULT_MULTIPLIER   = 1.0
	DEFAULT_MIN_WAIT     = 4 * time.Second
	DEFAULT_MAX_WAIT     = 10 * time.Second
)

// Classifier reports whether an error is worth retrying.
type Classifier func(error) bool

// Policy describes when and how often an operation is retried.
//
// The wait before attempt n+1 is Multiplier * 2^(n-1) seconds, clamped
// into [MinWait, MaxWait].
type Policy struct {
	MaxAttempts int
	Multiplier  float64
	MinWait     time.Duration
	MaxWait     time.Duration
	Retryable   Classifier
	Logger      *slog.Logger
}

// DefaultPolicy returns the default policy using the given classifier.
func DefaultPolicy(retryable Classifier, logger *slog.Logger) Policy {
	return Policy{
		MaxAttempts: DEFAULT_MAX_ATTEMPTS,
		Multiplier:  DEFAULT_MULTIPLIER,
		MinWait:     DEFAULT_MIN_WAIT,
		MaxWait:     DEFAULT_MAX_WAIT,
		Retryable:   retryable,
		Logger:      logger,
	}
}

// Wait returns the wait applied after the given failed attempt (1-based).
func (p Policy) Wait(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	wait := time.Duration(p.Multiplier * math.Pow(2, float64(attempt-1)) * float64(time.Second))
	if wait < p.MinWait {
		wait = p.MinWait
	}
	if p.MaxWait > 0 && wait > p.MaxWait {
		wait = p.MaxWait
	}
	return wait
}

func (p Policy) maxAttempts() uint {
	if p.MaxAttempts < 1 {
		return 1
	}
	return uint(p.MaxAttempts)
}

func (p Policy) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// schedule adapts Policy.Wait to backoff.BackOff.
type schedule struct {
	policy  Policy
	attempt int
}

func (s *schedule) NextBackOff() time.Duration {
	s.attempt++
	return s.policy.Wait(s.attempt)
}

func (s *schedule) Reset() {
	s.attempt = 0
}

// Do runs op until it succeeds, returns a non-retryable error, or the
// attempts are exhausted. The error of the last attempt is returned as is.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var (
		attempts int
		lastErr  error
	)

	res, err := backoff.Retry(ctx,
		func() (T, error) {
			attempts++
			v, err := op(ctx)
			if err == nil {
				return v, nil
			}
			lastErr = err
			if p.Retryable == nil || !p.Retryable(err) {
				return v, backoff.Permanent(err)
			}
			return v, err
		},
		backoff.WithBackOff(&schedule{policy: p}),
		backoff.WithMaxTries(p.maxAttempts()),
		backoff.WithNotify(func(err error, wait time.Duration) {
			p.logger().Warn("Retrying after transient error",
				"attempt", attempts+1,
				"max_attempts", p.maxAttempts(),
				"wait", wait.String(),
				"error", err.Error(),
			)
		}),
	)
	if err != nil && lastErr != nil && ctx.Err() == nil {
		return res, lastErr
	}
	return res, err
}

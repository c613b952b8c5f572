package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-runs failed calls with exponential backoff and jitter.
// Unavailable and rate-limited faults retry up to MaxAttempts; a
// bad-output fault is re-rolled exactly once; context errors stop
// immediately.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider in the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	rerolled := false

	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var f *Fault
		if errors.As(err, &f) && f.Kind == FaultBadOutput {
			if rerolled {
				return nil, err
			}
			rerolled = true
		}

		if attempt >= r.cfg.MaxAttempts-1 {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay(attempt, err)):
		}
	}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

// delay picks the wait before the next attempt. A RetryAfter supplied
// by the provider wins over the computed backoff.
func (r *retrier) delay(attempt int, err error) time.Duration {
	var f *Fault
	if errors.As(err, &f) && f.RetryAfter > 0 {
		return f.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter.
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(wait, 0))
}

package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds the inner retry loop around a single classification
// call. The queue worker's persisted per-item attempt budget sits above it.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// WithRetry wraps a Provider so transient failures are retried with
// exponential backoff and jitter.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

func (r *retryProvider) Classify(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	malformedSeen := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Classify(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyFailure(err) {
		case failPermanent:
			return nil, err
		case failMalformed:
			// The model gets one second chance to emit conforming JSON.
			if malformedSeen {
				return nil, err
			}
			malformedSeen = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

type failureClass int

const (
	failTransient failureClass = iota
	failPermanent
	failMalformed
)

// classifyFailure decides how the retry loop treats an error. Truncation is
// a token budget problem that retrying cannot fix, and a dead context stays
// dead. Everything not otherwise recognized is assumed transient.
func classifyFailure(err error) failureClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return failPermanent
	}

	var trunc *ErrTruncated
	if errors.As(err, &trunc) {
		return failPermanent
	}

	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		return failMalformed
	}

	return failTransient
}

// wait computes the pause before the next attempt. Rate limits that carry a
// RetryAfter hint win over the backoff curve.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// Spread simultaneous callers with up to 20 percent jitter either way.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(math.Max(wait, 0))
}

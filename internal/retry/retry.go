// Package retry is the single retry point for model invocation. Gateways
// never retry on their own; wrapping an already-retried call would multiply
// attempts.
package retry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/voxforge/studio/internal/llm"
)

// Policy controls attempt count and backoff growth. Delay before attempt
// n+1 is BaseDelay * 2^(n-1).
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// sleep is swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Default mirrors the service ceiling this module targets: 3 attempts,
// 2s base delay.
func Default() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second}
}

// WithSleep returns a copy of the policy using the given sleep function.
func (p Policy) WithSleep(sleep func(ctx context.Context, d time.Duration) error) Policy {
	p.sleep = sleep
	return p
}

// Do runs fn up to MaxAttempts times, backing off between transient
// failures. Non-retryable errors and exhaustion both return the last error
// unchanged so callers can still classify it.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = ctxSleep
	}

	delay := p.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !Retryable(lastErr) || attempt == p.MaxAttempts {
			return lastErr
		}

		if err := sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
	}
	return lastErr
}

// retryableSignatures are message fragments that mark a transient service
// condition even when no usable status code survived the transport.
var retryableSignatures = []string{
	"rate limit",
	"quota",
	"overloaded",
	"resource_exhausted",
	"internal server error",
	"service unavailable",
	"429",
	"503",
}

// Retryable reports whether err is a transient service condition worth
// another attempt. Client errors (bad requests, auth, refusals, malformed
// output) are permanent and fail immediately.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var te *llm.TransportError
	if errors.As(err, &te) {
		switch te.Status {
		case 429, 500, 503:
			return true
		case 0:
			// Pre-HTTP failure, fall through to message sniffing.
		default:
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range retryableSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

func ctxSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

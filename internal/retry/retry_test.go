package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/studio/internal/llm"
)

func recordingSleep(delays *[]time.Duration) func(ctx context.Context, d time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var delays []time.Duration
	p := Default().WithSleep(recordingSleep(&delays))

	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestDoRetriesTransientWithDoubledBackoff(t *testing.T) {
	var delays []time.Duration
	p := Default().WithSleep(recordingSleep(&delays))

	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &llm.TransportError{Status: 503, Message: "service unavailable"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	var delays []time.Duration
	p := Default().WithSleep(recordingSleep(&delays))

	permanent := &llm.TransportError{Status: 400, Message: "bad request"}
	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)

	// The original error survives untouched for classification.
	var te *llm.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 400, te.Status)
}

func TestDoReturnsLastErrorOnExhaustion(t *testing.T) {
	var delays []time.Duration
	p := Default().WithSleep(recordingSleep(&delays))

	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return &llm.TransportError{Status: 429, Message: "rate limit"}
	})

	assert.Equal(t, 3, calls)
	assert.Len(t, delays, 2)

	var te *llm.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 429, te.Status)
}

func TestDoHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Default().Do(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transport 429", &llm.TransportError{Status: 429}, true},
		{"transport 500", &llm.TransportError{Status: 500}, true},
		{"transport 503", &llm.TransportError{Status: 503}, true},
		{"transport 400", &llm.TransportError{Status: 400, Message: "rate limit exceeded"}, false},
		{"transport 401", &llm.TransportError{Status: 401}, false},
		{"pre-HTTP with rate limit text", &llm.TransportError{Status: 0, Message: "RATE LIMIT hit"}, true},
		{"pre-HTTP with quota text", &llm.TransportError{Status: 0, Message: "quota exceeded"}, true},
		{"pre-HTTP opaque", &llm.TransportError{Status: 0, Message: "connection reset"}, false},
		{"plain overloaded message", errors.New("model is overloaded, try again"), true},
		{"plain resource_exhausted", errors.New("RESOURCE_EXHAUSTED"), true},
		{"plain unrelated", errors.New("invalid persona id"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Retryable(tt.err))
		})
	}
}

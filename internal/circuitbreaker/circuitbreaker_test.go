//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(failures, successes int, timeout time.Duration) Config {
	return Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
		Name:             "pricing-bands",
	}
}

func trip(cb *CircuitBreaker, failures int) {
	for i := 0; i < failures; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("mongo unavailable")
		})
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	t.Run("success keeps circuit closed", func(t *testing.T) {
		cb := New(DefaultConfig())

		err := cb.Execute(context.Background(), func() error { return nil })

		assert.NoError(t, err)
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("opens after failure threshold", func(t *testing.T) {
		cb := New(testConfig(2, 1, 100*time.Millisecond))
		callErr := errors.New("mongo unavailable")

		err := cb.Execute(context.Background(), func() error { return callErr })
		assert.Equal(t, callErr, err)
		assert.Equal(t, StateClosed, cb.State())

		err = cb.Execute(context.Background(), func() error { return callErr })
		assert.Equal(t, callErr, err)
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("open circuit rejects without calling", func(t *testing.T) {
		cb := New(testConfig(1, 1, time.Minute))
		trip(cb, 1)

		called := false
		err := cb.Execute(context.Background(), func() error {
			called = true
			return nil
		})

		assert.Equal(t, ErrCircuitOpen, err)
		assert.False(t, called)
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		cb := New(DefaultConfig())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(testConfig(2, 2, 50*time.Millisecond))
	trip(cb, 2)
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig(2, 2, 50*time.Millisecond))
	trip(cb, 2)
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error {
		return errors.New("still down")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	trip(cb, 1)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := New(testConfig(1, 1, 100*time.Millisecond))

	assert.False(t, cb.IsOpen())

	trip(cb, 1)

	assert.True(t, cb.IsOpen())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "circuit-breaker", config.Name)
}

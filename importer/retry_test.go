package importer

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 4, BaseDelay: 10 * time.Millisecond}
	assert.Equal(t, time.Duration(0), p.Delay(0))
	assert.Equal(t, 10*time.Millisecond, p.Delay(1))
	assert.Equal(t, 20*time.Millisecond, p.Delay(2))
	assert.Equal(t, 40*time.Millisecond, p.Delay(3))
}

func TestRetryPolicy_Do(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	logger := slog.Default()

	t.Run("first attempt succeeds", func(t *testing.T) {
		attempts := 0
		err := policy.Do(context.Background(), logger, func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("transient failure", func(t *testing.T) {
		attempts := 0
		err := policy.Do(context.Background(), logger, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("conflict")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up", func(t *testing.T) {
		attempts := 0
		writeErr := errors.New("disk full")
		err := policy.Do(context.Background(), logger, func() error {
			attempts++
			return writeErr
		})
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "gave up after 3 attempts")
		assert.Equal(t, 3, attempts)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		err := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}.Do(ctx, logger, func() error {
			attempts++
			cancel()
			return errors.New("conflict")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("no attempts allowed", func(t *testing.T) {
		err := RetryPolicy{}.Do(context.Background(), logger, func() error { return nil })
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})
}

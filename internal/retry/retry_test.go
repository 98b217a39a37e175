package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoSucceedsOnSecondAttempt(t *testing.T) {
	calls := 0
	err := Do(zap.NewNop(), "fetch", Config{Attempts: 2}, func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

// TestDoPreservesErrorIdentity: after exhausted retries the caller still
// sees the exact error the last attempt produced.
func TestDoPreservesErrorIdentity(t *testing.T) {
	sentinel := errors.New("persistent failure")
	calls := 0
	err := Do(zap.NewNop(), "fetch", Config{Attempts: 2}, func() error {
		calls++
		return sentinel
	})
	assert.Equal(t, 2, calls)
	assert.Same(t, sentinel, err)
}

func TestDoPermanentNotRetried(t *testing.T) {
	sentinel := errors.New("auth expired")
	calls := 0
	cfg := Config{
		Attempts:  3,
		Permanent: func(err error) bool { return errors.Is(err, sentinel) },
	}
	err := Do(zap.NewNop(), "fetch", cfg, func() error {
		calls++
		return sentinel
	})
	assert.Equal(t, 1, calls)
	assert.Same(t, sentinel, err)
}

func TestDoZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := Do(zap.NewNop(), "fetch", Config{}, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

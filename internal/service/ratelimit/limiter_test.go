package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitFirstCallImmediate(t *testing.T) {
	l := New(100 * time.Millisecond)

	waited, err := l.Wait(context.Background(), "api")
	require.NoError(t, err)
	require.Zero(t, waited)
}

func TestWaitEnforcesInterval(t *testing.T) {
	l := New(50 * time.Millisecond)

	_, err := l.Wait(context.Background(), "api")
	require.NoError(t, err)

	start := time.Now()
	waited, err := l.Wait(context.Background(), "api")
	require.NoError(t, err)
	require.Greater(t, waited, time.Duration(0))
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestWaitKeysIndependent(t *testing.T) {
	l := New(time.Minute)

	_, err := l.Wait(context.Background(), "a")
	require.NoError(t, err)

	waited, err := l.Wait(context.Background(), "b")
	require.NoError(t, err)
	require.Zero(t, waited)
}

func TestWaitContextCancelled(t *testing.T) {
	l := New(time.Minute)

	_, err := l.Wait(context.Background(), "api")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Wait(ctx, "api")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitZeroIntervalDisabled(t *testing.T) {
	l := New(0)

	for i := 0; i < 10; i++ {
		waited, err := l.Wait(context.Background(), "api")
		require.NoError(t, err)
		require.Zero(t, waited)
	}
}

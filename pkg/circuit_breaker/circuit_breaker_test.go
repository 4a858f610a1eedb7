package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cb := newCircuitBreaker(Settings{
		RecordLength:     10,
		Timeout:          2 * time.Second,
		Percentile:       0.3,
		RecoveryRequests: 2,
	}, clock)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	now = now.Add(3 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())

	for i := 0; i < 3; i++ {
		_ = cb.Call(fail)
	}
	require.Equal(t, Open, cb.State())

	now = now.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
}

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "secret", TTL: time.Hour}
	p := auth.Profile{UserID: "u-1", Username: "Test User", Role: auth.RoleUser}

	token, exp, err := auth.NewToken(cfg, p, time.Now())
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	claims, err := auth.ParseToken(cfg, token)
	require.NoError(t, err)
	require.Equal(t, p, claims.Profile)
}

func TestToken_Invalid(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "secret", TTL: time.Hour}
	token, _, err := auth.NewToken(cfg, auth.Profile{UserID: "u-1"}, time.Now())
	require.NoError(t, err)

	_, err = auth.ParseToken(auth.Config{Secret: "other"}, token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	expired := auth.Config{Secret: "secret", TTL: time.Minute}
	token, _, err = auth.NewToken(expired, auth.Profile{UserID: "u-1"}, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = auth.ParseToken(expired, token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, ok := auth.GetAuthContext(context.Background())
	require.False(t, ok)

	p := auth.Profile{UserID: "u-1", Role: auth.RoleLibrarian}
	got, ok := auth.GetAuthContext(auth.SetAuthContext(context.Background(), p))
	require.True(t, ok)
	require.Equal(t, p, got)
}

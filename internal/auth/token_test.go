package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 60)
	token, expiresAt, err := tm.GenerateToken("u-1", "a@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "a@example.com", claims.Email)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("u-1", "a@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 60).ParseToken(token)
	require.Error(t, err)
}

func TestTokenExpiredRejected(t *testing.T) {
	t.Parallel()

	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := tm.GenerateToken("u-1", "a@example.com")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("test-secret", 60).ParseToken("not.a.token")
	require.Error(t, err)
}

func TestTokenTTLDefault(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 0)
	_, expiresAt, err := tm.GenerateToken("u-1", "a@example.com")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

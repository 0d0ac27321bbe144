package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	st, err := NewSessionToken("secret", "user-1", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, st.Token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), st.Exp, time.Minute)

	tok, err := jwt.Parse(st.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["sub"])
}

func TestNewSessionToken_WrongSecretRejected(t *testing.T) {
	st, err := NewSessionToken("secret", "user-1", 7)
	require.NoError(t, err)

	_, err = jwt.Parse(st.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestNewResetToken(t *testing.T) {
	rt, err := NewResetToken()
	require.NoError(t, err)
	assert.Len(t, rt.Raw, 40, "20 random bytes hex encoded")
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), rt.Exp, time.Minute)

	other, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, rt.Raw, other.Raw)
}

func TestHashResetRaw_Deterministic(t *testing.T) {
	h1 := HashResetRaw("some-token")
	h2 := HashResetRaw("some-token")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashResetRaw("other-token"))
	assert.NotContains(t, h1, "some-token")
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)

	tok, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	subject, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokensRejectWrongSecret(t *testing.T) {
	tok, err := NewTokens("secret-a", time.Minute).Issue("user@example.com")
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Minute).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensRejectExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)
	tok, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensRejectGarbage(t *testing.T) {
	_, err := NewTokens("test-secret", time.Minute).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
}

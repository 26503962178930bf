package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate(42, "farmer_joe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "farmer_joe", claims.Username)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(1, "bob")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate(1, "bob")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.Error(t, err)

	_, err = tm.Parse("")
	assert.Error(t, err)
}

func TestTokenManager_TTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 60*time.Minute)
	assert.Equal(t, time.Hour, tm.TTL())
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieManagerRoundTrip(t *testing.T) {
	m := NewCookieManager("test-secret", time.Hour, false)

	tok, err := m.Sign("abc-123")
	require.NoError(t, err)

	sid, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sid)
}

func TestCookieManagerRejectsWrongSecret(t *testing.T) {
	m := NewCookieManager("secret-a", time.Hour, false)
	other := NewCookieManager("secret-b", time.Hour, false)

	tok, err := m.Sign("abc-123")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.Error(t, err)
}

func TestCookieManagerRejectsGarbage(t *testing.T) {
	m := NewCookieManager("secret", time.Hour, false)
	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestCookieManagerRejectsExpired(t *testing.T) {
	m := NewCookieManager("secret", -time.Minute, false)
	tok, err := m.Sign("abc-123")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, VerifyPassword("hunter2", hash))
	assert.Error(t, VerifyPassword("hunter3", hash))
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie_RoundTrip(t *testing.T) {
	value, err := SignSessionCookie("opaque-token-123", "secret", time.Hour)
	require.NoError(t, err)

	got, err := ParseSessionCookie(value, "secret")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token-123", got)
}

func TestParseSessionCookie_WrongSecret(t *testing.T) {
	value, err := SignSessionCookie("opaque-token-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionCookie(value, "other-secret")
	assert.ErrorIs(t, err, ErrCookieInvalid)
}

func TestParseSessionCookie_Tampered(t *testing.T) {
	value, err := SignSessionCookie("opaque-token-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionCookie(value+"x", "secret")
	assert.ErrorIs(t, err, ErrCookieInvalid)
}

func TestParseSessionCookie_Expired(t *testing.T) {
	value, err := SignSessionCookie("opaque-token-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionCookie(value, "secret")
	assert.ErrorIs(t, err, ErrCookieExpired)
}

func TestParseSessionCookie_Garbage(t *testing.T) {
	_, err := ParseSessionCookie("not-a-jwt", "secret")
	assert.ErrorIs(t, err, ErrCookieInvalid)
}

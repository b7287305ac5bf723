package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec_IssueAndParse(t *testing.T) {
	codec := NewCookieCodec(CookieConfig{Secret: "test-secret", TTL: time.Hour})

	value, err := codec.Issue("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, value)

	sessionID, err := codec.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestCookieCodec_ParseRejectsGarbage(t *testing.T) {
	codec := NewCookieCodec(CookieConfig{Secret: "test-secret", TTL: time.Hour})

	_, err := codec.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_ParseRejectsWrongSecret(t *testing.T) {
	issuer := NewCookieCodec(CookieConfig{Secret: "secret-a", TTL: time.Hour})
	verifier := NewCookieCodec(CookieConfig{Secret: "secret-b", TTL: time.Hour})

	value, err := issuer.Issue("session-123")
	require.NoError(t, err)

	_, err = verifier.Parse(value)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_ParseRejectsExpired(t *testing.T) {
	codec := NewCookieCodec(CookieConfig{Secret: "test-secret", TTL: -time.Minute})

	value, err := codec.Issue("session-123")
	require.NoError(t, err)

	_, err = codec.Parse(value)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_Defaults(t *testing.T) {
	codec := NewCookieCodec(CookieConfig{Secret: "test-secret"})
	assert.Equal(t, "admin_session", codec.Name())
	assert.Equal(t, 30*24*time.Hour, codec.ttl)
}

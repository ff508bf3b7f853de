package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	c := NewTokenCodec("test-secret")

	tok, err := c.Issue("user-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestTokenCodecDistinctTokens(t *testing.T) {
	c := NewTokenCodec("test-secret")

	a, err := c.Issue("user-1", time.Hour)
	require.NoError(t, err)
	b, err := c.Issue("user-1", time.Hour)
	require.NoError(t, err)

	// Same user, same TTL, same second; the jti keeps them distinct.
	assert.NotEqual(t, a, b)
}

func TestTokenCodecExpiry(t *testing.T) {
	now := time.Now()
	c := NewTokenCodec("test-secret").WithClock(func() time.Time { return now })

	tok, err := c.Issue("user-1", time.Minute)
	require.NoError(t, err)

	_, err = c.Verify(tok)
	require.NoError(t, err)

	c.WithClock(func() time.Time { return now.Add(2 * time.Minute) })
	_, err = c.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecWrongSecret(t *testing.T) {
	tok, err := NewTokenCodec("secret-a").Issue("user-1", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenCodec("secret-b").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecGarbage(t *testing.T) {
	c := NewTokenCodec("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := c.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

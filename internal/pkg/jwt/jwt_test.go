package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type staticID string

func (s staticID) Generate() string { return string(s) }

func newTestJWT(t *testing.T, clk *fixedClock) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:    []byte(strings.Repeat("s", 64)),
		Issuer:    "storefront",
		Audiences: []string{"storefront-web"},
		TTL:       24 * time.Hour,
		Clock:     clk,
		UUID:      staticID("jti-1"),
	})
	require.NoError(t, err)
	return j
}

func TestNewHS512_ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetric_RoundTrip(t *testing.T) {
	clk := &fixedClock{t: time.Now()}
	j := newTestJWT(t, clk)

	tok, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)

	claims, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CustomerID)
	assert.Equal(t, "jane@example.com", claims.CustomerEmail)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "jti-1", claims.ID)
	assert.Equal(t, 24*time.Hour, j.TTL())
}

func TestSymmetric_Expired(t *testing.T) {
	clk := &fixedClock{t: time.Now()}
	j := newTestJWT(t, clk)

	tok, err := j.Generate(1, "a@b.c")
	require.NoError(t, err)

	clk.t = clk.t.Add(25 * time.Hour)
	_, err = j.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetric_Tampered(t *testing.T) {
	j := newTestJWT(t, &fixedClock{t: time.Now()})

	tok, err := j.Generate(1, "a@b.c")
	require.NoError(t, err)

	_, err = j.Verify(tok + "x")
	assert.Error(t, err)
}

func TestAuthContext(t *testing.T) {
	assert.Nil(t, GetAuth(context.Background()))

	ctx := SetAuth(context.Background(), Claims{CustomerID: 9})
	require.NotNil(t, GetAuth(ctx))
	assert.Equal(t, int64(9), GetAuth(ctx).CustomerID)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		value    string
		required bool
		want     string
	}{
		{"Bearer abc", true, "abc"},
		{"bearer abc", true, "abc"},
		{"Basic abc", true, ""},
		{"abc", true, ""},
		{"abc", false, "abc"},
		{"Bearer abc", false, "abc"},
		{"", false, ""},
		{"a b c", false, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractToken(tt.value, tt.required), tt.value)
	}
}

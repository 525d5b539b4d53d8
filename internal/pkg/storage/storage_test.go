package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/avatars/c/1.png", PublicURL("https://cdn.example.com/", "avatars", "c/1.png"))
	assert.Equal(t, "/avatars/c/1.png", PublicURL("", "avatars", "c/1.png"))

	key, ok := KeyFromURL("https://cdn.example.com", "avatars", "https://cdn.example.com/avatars/c/1.png")
	require.True(t, ok)
	assert.Equal(t, "c/1.png", key)

	_, ok = KeyFromURL("https://cdn.example.com", "avatars", "https://graph.facebook.com/me/picture")
	assert.False(t, ok)
}

func TestSniffImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600)...)

	ct, ext, body, err := SniffImage(bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, ".png", ext)

	replayed, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, png, replayed)

	_, _, _, err = SniffImage(strings.NewReader("just text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLimitReader(t *testing.T) {
	got, err := io.ReadAll(LimitReader(strings.NewReader("12345"), 5))
	require.NoError(t, err)
	assert.Equal(t, "12345", string(got))

	_, err = io.ReadAll(LimitReader(strings.NewReader("123456"), 5))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "customers/42.png", ObjectKey("customers", "42", ".png"))
	assert.Equal(t, "42.jpg", ObjectKey("", "42", ".jpg"))
}

func TestNewFromDriver_Unknown(t *testing.T) {
	_, err := NewFromDriver(context.Background(), "ftp", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

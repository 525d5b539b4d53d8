package facebook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "id,name,email", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"1029","name":"Jane Doe","email":"jane@example.com"}`))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestFacebook_Profile(t *testing.T) {
	srv := newGraph(t)
	f := New(Config{GraphURL: srv.URL, HTTPClient: srv.Client()}, instrument.NewNoop())

	p, err := f.Profile(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "facebook", p.Provider)
	assert.Equal(t, "1029", p.ID)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)
}

func TestFacebook_ProfileRejected(t *testing.T) {
	srv := newGraph(t)
	f := New(Config{GraphURL: srv.URL + "/", HTTPClient: srv.Client()}, instrument.NewNoop())

	_, err := f.Profile(context.Background(), "expired")
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "OAuthException")
}

func TestNew_DefaultGraphURL(t *testing.T) {
	f := New(Config{}, instrument.NewNoop())
	assert.Equal(t, DefaultGraphURL, f.graphURL)
}

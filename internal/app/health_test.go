package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		db     pinger
		cache  pinger
		want   HealthResponse
		status int
	}{
		{name: "AllUp", db: ok, cache: ok, want: HealthResponse{Database: "up", Redis: "up"}, status: http.StatusOK},
		{name: "DatabaseDown", db: down, cache: ok, want: HealthResponse{Database: "down", Redis: "up"}, status: http.StatusServiceUnavailable},
		{name: "RedisDown", db: ok, cache: down, want: HealthResponse{Database: "up", Redis: "down"}, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkHealth(context.Background(), tt.db, tt.cache)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.status, got.StatusCode())
		})
	}
}

func TestCheckHealth_PingGetsDeadline(t *testing.T) {
	var hasDeadline bool
	ping := func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}

	checkHealth(context.Background(), ping, ping)
	assert.True(t, hasDeadline)
}

//go:build integration

package idempotency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/storefront/internal/pkg/idempotency"
	"github.com/shandysiswandi/storefront/internal/pkg/testutil/containers"
)

func TestTracker_Exec(t *testing.T) {
	ctx := context.Background()
	client := containers.Redis(t)
	tr := idempotency.New(client, "test:")

	calls := 0
	run := func(context.Context) error { calls++; return nil }

	require.NoError(t, tr.Exec(ctx, "k1", run))
	assert.ErrorIs(t, tr.Exec(ctx, "k1", run), idempotency.ErrAlreadyCompleted)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	err := tr.Exec(ctx, "k2", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, tr.Exec(ctx, "k2", run), "failed key is released")

	state, err := tr.Acquire(ctx, "k3", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, idempotency.StateNone, state)
	assert.ErrorIs(t, tr.Exec(ctx, "k3", run), idempotency.ErrAlreadyInProgress)

	assert.ErrorIs(t, tr.Exec(ctx, "", run), idempotency.ErrEmptyKey)
}

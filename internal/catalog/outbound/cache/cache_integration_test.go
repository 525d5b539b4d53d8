//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/catalog/outbound/cache"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/testutil/containers"
)

func TestCache_Lists(t *testing.T) {
	ctx := context.Background()
	client := containers.Redis(t)
	c := cache.NewCache(client, time.Minute, instrument.NewNoop())

	_, err := c.GetDepartments(ctx)
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	deps := []entity.Department{{ID: 1, Name: "Regional", Description: "Proud of our heritage"}}
	require.NoError(t, c.SetDepartments(ctx, deps))
	got, err := c.GetDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, deps, got)

	cats := []entity.Category{{ID: 1, DepartmentID: 1, Name: "French"}}
	require.NoError(t, c.SetCategories(ctx, cats))
	gotCats, err := c.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, gotCats)

	ttl, err := client.TTL(ctx, "catalog:categories").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute)
}

//go:build integration

package pgxcasbin_test

import (
	"context"
	"testing"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/storefront/internal/pkg/pgxcasbin"
	"github.com/shandysiswandi/storefront/internal/pkg/testutil/containers"
)

const rbac = `
[request_definition]
r = sub, obj, act
[policy_definition]
p = sub, obj, act
[role_definition]
g = _, _
[policy_effect]
e = some(where (p.eft == allow))
[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

func TestAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := containers.Postgres(t)

	adapter, err := pgxcasbin.NewAdapter(ctx, pool)
	require.NoError(t, err)

	m, err := model.NewModelFromString(rbac)
	require.NoError(t, err)

	e, err := casbin.NewEnforcer(m, adapter)
	require.NoError(t, err)
	e.EnableAutoSave(true)

	_, err = e.AddPolicy("admin", "catalog.product", "update")
	require.NoError(t, err)
	_, err = e.AddGroupingPolicy("42", "admin")
	require.NoError(t, err)

	// a second enforcer sees what the first one saved
	m2, err := model.NewModelFromString(rbac)
	require.NoError(t, err)
	e2, err := casbin.NewEnforcer(m2, adapter)
	require.NoError(t, err)

	ok, err := e2.Enforce("42", "catalog.product", "update")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e2.Enforce("7", "catalog.product", "update")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.RemoveGroupingPolicy("42", "admin")
	require.NoError(t, err)
	require.NoError(t, e2.LoadPolicy())

	ok, err = e2.Enforce("42", "catalog.product", "update")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapterFiltered(t *testing.T) {
	ctx := context.Background()
	pool := containers.Postgres(t)

	adapter, err := pgxcasbin.NewAdapter(ctx, pool, pgxcasbin.WithTableName("filtered_rules"))
	require.NoError(t, err)

	require.NoError(t, adapter.AddPolicy("p", "p", []string{"admin", "catalog.product", "update"}))
	require.NoError(t, adapter.AddPolicy("p", "p", []string{"staff", "order.order", "read"}))

	m, err := model.NewModelFromString(rbac)
	require.NoError(t, err)
	require.NoError(t, adapter.LoadFilteredPolicy(m, pgxcasbin.Filter{"p": {{"admin"}}}))
	assert.True(t, adapter.IsFiltered())

	rules, err := m.GetPolicy("p", "p")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"admin", "catalog.product", "update"}}, rules)
}

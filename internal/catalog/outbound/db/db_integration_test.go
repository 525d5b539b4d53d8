//go:build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/catalog/outbound/db"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/testutil/containers"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

const fixture = `
insert into department (department_id, name, description) values (1, 'Regional', null), (2, 'Nature', 'Wild');
insert into category (category_id, department_id, name, description) values (1, 1, 'French', 'Paris'), (2, 2, 'Animal', null);
insert into product (product_id, name, description, price, discounted_price) values
  (1, 'Arc d''Triomphe', 'A stamp of the arch', 14.99, 0.00),
  (2, 'Chartres Cathedral', 'Gothic cathedral', 16.95, 15.95),
  (3, 'Corsica', 'Island stamp', 22.00, 0.00);
insert into product_category (product_id, category_id) values (1, 1), (2, 1), (3, 2);
insert into attribute (attribute_id, name) values (1, 'Size'), (2, 'Color');
insert into attribute_value (attribute_value_id, attribute_id, value) values (1, 1, 'S'), (2, 1, 'M');
insert into product_attribute (product_id, attribute_value_id) values (1, 1), (1, 2);
insert into customer (customer_id, name, email, password) values (10, 'Ann', 'ann@example.com', '');
`

func setup(t *testing.T) *db.DB {
	t.Helper()
	pool := containers.Postgres(t, "../../../../schema/schema.sql")
	_, err := pool.Exec(context.Background(), fixture)
	require.NoError(t, err)
	return db.NewDB(pool, instrument.NewNoop())
}

func TestDB_Catalog(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	deps, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "", deps[0].Description)

	_, err = s.GetDepartment(ctx, 99)
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	cats, err := s.ListCategoriesByDepartment(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	rows, count, err := s.ListProducts(ctx, entity.ProductFilter{Search: "CATHEDRAL", Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, rows, 1)
	assert.Equal(t, valueobject.Money(1695), rows[0].Price)
	assert.Equal(t, valueobject.Money(1595), rows[0].DiscountedPrice)

	rows, count, err = s.ListProducts(ctx, entity.ProductFilter{DepartmentID: 1, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0].ID)

	locs, err := s.ListProductLocations(ctx, 3)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Nature", locs[0].DepartmentName)

	require.NoError(t, s.UpdateProductImage(ctx, 1, entity.ImageSlotThumbnail, "http://cdn/t.png"))
	p, err := s.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/t.png", p.Thumbnail)
	assert.ErrorIs(t, s.UpdateProductImage(ctx, 99, entity.ImageSlotImage, "x"), goerror.ErrNotFound)

	attrs, err := s.ListProductAttributes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, attrs, 2)

	vals, err := s.ListAttributeValues(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, vals)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.CreateReview(ctx, entity.Review{ID: 1, CustomerID: 10, ProductID: 1, Review: "nice", Rating: 5, CreatedOn: now}))
	reviews, err := s.ListReviews(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ann", reviews[0].CustomerName)
}

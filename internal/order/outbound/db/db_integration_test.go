//go:build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/order/outbound/db"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/testutil/containers"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

const (
	cartID  = "0b6f7c43-8f7a-4b8e-9d3c-2f1a5e6d7c8b"
	fixture = `
insert into product (product_id, name, price, discounted_price) values
  (1, 'Arc d''Triomphe', 14.99, 0.00),
  (2, 'Chartres Cathedral', 16.95, 15.95);
insert into shipping_region (shipping_region_id, shipping_region) values (2, 'US / Canada');
insert into shipping (shipping_id, shipping_type, shipping_cost, shipping_region_id) values
  (1, 'Next Day Delivery ($20)', 20.00, 2),
  (2, '3-4 Days ($10)', 10.00, 2);
insert into tax (tax_id, tax_type, tax_percentage) values (1, 'Sales Tax at 8.5%', 8.50);
insert into customer (customer_id, name, email) values (10, 'Ann', 'ann@example.com');
`
)

func setup(t *testing.T) *db.DB {
	t.Helper()
	pool := containers.Postgres(t, "../../../../schema/schema.sql")
	_, err := pool.Exec(context.Background(), fixture)
	require.NoError(t, err)
	return db.NewDB(pool, instrument.NewNoop())
}

func TestDB_CartAndOrder(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 1, CartID: cartID, ProductID: 1, Attributes: "LG", Quantity: 1, AddedOn: now}))
	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 2, CartID: cartID, ProductID: 1, Attributes: "LG", Quantity: 2, AddedOn: now}))
	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 3, CartID: cartID, ProductID: 2, Attributes: "", Quantity: 1, AddedOn: now}))

	err := s.AddCartItem(ctx, entity.CartItem{ItemID: 4, CartID: cartID, ProductID: 99, Quantity: 1, AddedOn: now})
	assert.ErrorIs(t, err, entity.ErrProductNotFound)

	items, err := s.ListCartItems(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int32(3), items[0].Quantity)
	assert.Equal(t, valueobject.Money(1499), items[0].Price)
	assert.Equal(t, valueobject.Money(1595), items[1].Price)

	shippings, err := s.ListShippings(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, shippings, 2)

	tax, err := s.GetTax(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, tax.Percentage, 0.0001)

	_, err = s.GetShipping(ctx, 99)
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	order := entity.Order{ID: 100, TotalAmount: 6983, CreatedOn: now, CustomerID: 10, ShippingID: 1, TaxID: 1}
	details := []entity.OrderDetail{
		{ItemID: 200, OrderID: 100, ProductID: 1, Attributes: "LG", ProductName: "Arc d'Triomphe", Quantity: 3, UnitCost: 1499},
		{ItemID: 201, OrderID: 100, ProductID: 2, ProductName: "Chartres Cathedral", Quantity: 1, UnitCost: 1595},
	}
	require.NoError(t, s.CreateOrder(ctx, order, details, items))

	items, err = s.ListCartItems(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, items)

	got, err := s.GetOrder(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, valueobject.Money(6983), got.TotalAmount)
	assert.Equal(t, "Ann", got.CustomerName)
	assert.Equal(t, entity.OrderStatusUnpaid, got.Status)

	orders, err := s.ListOrders(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	lines, err := s.ListOrderDetails(ctx, 100)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, valueobject.Money(4497), lines[0].Subtotal())
}

func TestDB_CreateOrderKeepsCartChangesMadeAfterRead(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 1, CartID: cartID, ProductID: 1, Attributes: "LG", Quantity: 2, AddedOn: now}))

	read, err := s.ListCartItems(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, read, 1)

	// another request merges into the read line and adds a new one
	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 2, CartID: cartID, ProductID: 1, Attributes: "LG", Quantity: 1, AddedOn: now}))
	require.NoError(t, s.AddCartItem(ctx, entity.CartItem{ItemID: 3, CartID: cartID, ProductID: 2, Quantity: 1, AddedOn: now.Add(time.Second)}))

	order := entity.Order{ID: 101, TotalAmount: 2998, CreatedOn: now, CustomerID: 10, ShippingID: 1, TaxID: 1}
	details := []entity.OrderDetail{
		{ItemID: 300, OrderID: 101, ProductID: 1, Attributes: "LG", ProductName: "Arc d'Triomphe", Quantity: 2, UnitCost: 1499},
	}
	require.NoError(t, s.CreateOrder(ctx, order, details, read))

	left, err := s.ListCartItems(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, int64(1), left[0].ItemID)
	assert.Equal(t, int32(1), left[0].Quantity)
	assert.Equal(t, int64(3), left[1].ItemID)
	assert.Equal(t, int32(1), left[1].Quantity)

	lines, err := s.ListOrderDetails(ctx, 101)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int32(2), lines[0].Quantity)
}

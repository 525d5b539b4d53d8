package usecase

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/idempotency"
	"github.com/stretchr/testify/mock"
)

type mockRepoDB struct{ mock.Mock }

func (m *mockRepoDB) ListCartItems(ctx context.Context, cartID string) ([]entity.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]entity.CartItem)
	return items, args.Error(1)
}

func (m *mockRepoDB) AddCartItem(ctx context.Context, item entity.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRepoDB) DeleteCart(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}

func (m *mockRepoDB) ListShippingRegions(ctx context.Context) ([]entity.ShippingRegion, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.ShippingRegion)
	return items, args.Error(1)
}

func (m *mockRepoDB) ListShippings(ctx context.Context, regionID int32) ([]entity.Shipping, error) {
	args := m.Called(ctx, regionID)
	items, _ := args.Get(0).([]entity.Shipping)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetShipping(ctx context.Context, id int32) (*entity.Shipping, error) {
	args := m.Called(ctx, id)
	sh, _ := args.Get(0).(*entity.Shipping)
	return sh, args.Error(1)
}

func (m *mockRepoDB) ListTaxes(ctx context.Context) ([]entity.Tax, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Tax)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetTax(ctx context.Context, id int32) (*entity.Tax, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Tax)
	return t, args.Error(1)
}

func (m *mockRepoDB) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockRepoDB) CreateOrder(ctx context.Context, order entity.Order, details []entity.OrderDetail, ordered []entity.CartItem) error {
	return m.Called(ctx, order, details, ordered).Error(0)
}

func (m *mockRepoDB) ListOrders(ctx context.Context, customerID int64) ([]entity.Order, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]entity.Order)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *mockRepoDB) ListOrderDetails(ctx context.Context, orderID int64) ([]entity.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]entity.OrderDetail)
	return items, args.Error(1)
}

type mockRepoMessaging struct{ mock.Mock }

func (m *mockRepoMessaging) PublishOrderCreated(ctx context.Context, msg OrderCreatedEvent) error {
	return m.Called(ctx, msg).Error(0)
}

// fakeIdempotency remembers completed keys in memory.
type fakeIdempotency struct {
	done map[string]bool
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.done[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	f.done[key] = true
	return nil
}

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 { s.n++; return s.n }

type staticString string

func (s staticString) Generate() string { return string(s) }

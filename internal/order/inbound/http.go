package inbound

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/order/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

// HeaderIdempotencyKey guards order submissions against client retries.
const HeaderIdempotencyKey = "Idempotency-Key"

type uc interface {
	GenerateCartID(ctx context.Context) string
	AddCartItem(ctx context.Context, in usecase.AddCartItemInput) (*entity.Cart, error)
	GetCart(ctx context.Context, cartID string) (*entity.Cart, error)
	EmptyCart(ctx context.Context, cartID string) error

	ListShippingRegions(ctx context.Context) ([]entity.ShippingRegion, error)
	ListShippings(ctx context.Context, regionID int32) ([]entity.Shipping, error)
	ListTaxes(ctx context.Context) ([]entity.Tax, error)

	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (int64, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	ListOrderDetails(ctx context.Context, id int64) ([]entity.OrderDetail, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// GET /carts/generate-id shares the :id segment; GetCart dispatches it.
	r.GET("/api/v1/order/carts/:id", end.GetCart)
	r.POST("/api/v1/order/carts/:id/items", end.AddCartItem)
	r.DELETE("/api/v1/order/carts/:id", end.EmptyCart)

	r.GET("/api/v1/order/shipping-regions", end.ListShippingRegions)
	r.GET("/api/v1/order/shipping-regions/:id/shippings", end.ListShippings)
	r.GET("/api/v1/order/taxes", end.ListTaxes)

	r.POST("/api/v1/order/orders", end.CreateOrder)
	r.GET("/api/v1/order/orders", end.ListOrders)
	r.GET("/api/v1/order/orders/:id", end.GetOrder)
	r.GET("/api/v1/order/orders/:id/details", end.ListOrderDetails)
}

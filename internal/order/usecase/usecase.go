package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/idempotency"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"go.opentelemetry.io/otel/trace"
)

type OrderCreatedEvent struct {
	OrderID      int64
	CustomerID   int64
	Email        string
	Name         string
	TotalAmount  string
	ItemQuantity int32
}

type repoMessaging interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedEvent) error
}

type repoDB interface {
	ListCartItems(ctx context.Context, cartID string) ([]entity.CartItem, error)
	AddCartItem(ctx context.Context, item entity.CartItem) error
	DeleteCart(ctx context.Context, cartID string) error

	ListShippingRegions(ctx context.Context) ([]entity.ShippingRegion, error)
	ListShippings(ctx context.Context, regionID int32) ([]entity.Shipping, error)
	GetShipping(ctx context.Context, id int32) (*entity.Shipping, error)
	ListTaxes(ctx context.Context) ([]entity.Tax, error)
	GetTax(ctx context.Context, id int32) (*entity.Tax, error)

	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	// CreateOrder stores the order with its details and removes the ordered
	// quantities from the cart in one transaction.
	CreateOrder(ctx context.Context, order entity.Order, details []entity.OrderDetail, ordered []entity.CartItem) error
	ListOrders(ctx context.Context, customerID int64) ([]entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	ListOrderDetails(ctx context.Context, orderID int64) ([]entity.OrderDetail, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idempotency   idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	uuid          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	UUID          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idempotency:   dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, reason.Unauthorized.New()
	}
	return clm, nil
}

// ownOrder hides other customers' orders behind ORD_01.
func (s *Usecase) ownOrder(ctx context.Context, customerID, orderID int64) (*entity.Order, error) {
	o, err := s.repoDB.GetOrder(ctx, orderID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.OrderNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get order", "order_id", orderID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if o.CustomerID != customerID {
		slog.WarnContext(ctx, "order belongs to another customer", "order_id", orderID, "customer_id", customerID)
		return nil, reason.OrderNotFound.New()
	}
	return o, nil
}

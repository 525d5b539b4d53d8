package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/idempotency"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type CreateOrderInput struct {
	IdempotencyKey string `validate:"max=255"`
	CartID         string `validate:"required,uuid"`
	ShippingID     int32  `validate:"gt=0"`
	TaxID          int32  `validate:"gt=0"`
}

// CreateOrder turns the cart into an unpaid order. With an idempotency key a
// retried submission is rejected with ORD_02 instead of ordering twice.
func (s *Usecase) CreateOrder(ctx context.Context, in CreateOrderInput) (int64, error) {
	ctx, span := s.startSpan(ctx, "CreateOrder")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return 0, err
	}

	in.CartID = strings.TrimSpace(in.CartID)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if err := s.validator.Validate(in); err != nil {
		return 0, goerror.NewInvalidInput(err)
	}

	var orderID int64
	run := func(ctx context.Context) error {
		id, err := s.createOrder(ctx, clm.CustomerID, in)
		orderID = id
		return err
	}

	if in.IdempotencyKey == "" || s.idempotency == nil {
		return orderID, run(ctx)
	}

	key := "order:" + strconv.FormatInt(clm.CustomerID, 10) + ":" + in.IdempotencyKey
	ttl := time.Duration(s.cfg.GetInt64("modules.order.idempotency_ttl_hours")) * time.Hour

	err = s.idempotency.Exec(ctx, key, run, idempotency.WithStateTTL(ttl))
	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		return 0, reason.OrderDuplicate.Wrap(err)
	}

	if err != nil && orderID != 0 {
		slog.WarnContext(ctx, "order created but idempotency key not marked completed", "order_id", orderID, "error", err)
		return orderID, nil
	}

	var gerr *goerror.Error
	if err != nil && !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "failed to track idempotency key", "customer_id", clm.CustomerID, "error", err)
		return 0, goerror.NewServer(err)
	}

	return orderID, err
}

func (s *Usecase) createOrder(ctx context.Context, customerID int64, in CreateOrderInput) (int64, error) {
	cart, err := s.cart(ctx, in.CartID)
	if err != nil {
		return 0, err
	}
	if len(cart.Items) == 0 {
		return 0, reason.CartEmpty.New()
	}

	shipping, err := s.repoDB.GetShipping(ctx, in.ShippingID)
	if errors.Is(err, goerror.ErrNotFound) {
		return 0, reason.ShippingNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get shipping", "shipping_id", in.ShippingID, "error", err)
		return 0, goerror.NewServer(err)
	}

	tax, err := s.repoDB.GetTax(ctx, in.TaxID)
	if errors.Is(err, goerror.ErrNotFound) {
		return 0, reason.TaxNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get tax", "tax_id", in.TaxID, "error", err)
		return 0, goerror.NewServer(err)
	}

	customer, err := s.repoDB.GetCustomer(ctx, customerID)
	if errors.Is(err, goerror.ErrNotFound) {
		return 0, reason.CustomerNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer", "customer_id", customerID, "error", err)
		return 0, goerror.NewServer(err)
	}

	order := entity.Order{
		ID:          s.uid.Generate(),
		TotalAmount: orderTotal(cart.Total(), shipping.Cost, tax.Percentage),
		CreatedOn:   s.clock.Now(),
		Status:      entity.OrderStatusUnpaid,
		CustomerID:  customerID,
		ShippingID:  shipping.ID,
		TaxID:       tax.ID,
	}

	details := make([]entity.OrderDetail, 0, len(cart.Items))
	for _, it := range cart.Items {
		details = append(details, entity.OrderDetail{
			ItemID:      s.uid.Generate(),
			OrderID:     order.ID,
			ProductID:   it.ProductID,
			Attributes:  it.Attributes,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			UnitCost:    it.Price,
		})
	}

	if err := s.repoDB.CreateOrder(ctx, order, details, cart.Items); err != nil {
		slog.ErrorContext(ctx, "failed to repo create order", "customer_id", customerID, "cart_id", cart.ID, "error", err)
		return 0, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOrderCreated(ctx, OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerID:   customer.ID,
		Email:        customer.Email,
		Name:         customer.Name,
		TotalAmount:  order.TotalAmount.String(),
		ItemQuantity: cart.Quantity(),
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish order created", "order_id", order.ID, "error", err)
	}

	return order.ID, nil
}

// orderTotal is the items subtotal plus shipping plus tax on the subtotal.
func orderTotal(subtotal, shipping valueobject.Money, taxPercentage float64) valueobject.Money {
	return subtotal + shipping + subtotal.Percent(taxPercentage)
}

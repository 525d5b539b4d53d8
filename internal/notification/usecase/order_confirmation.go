package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/storefront/internal/notification/entity"
)

type OrderConfirmationInput struct {
	OrderID      int64  `validate:"gt=0"`
	CustomerID   int64  `validate:"gt=0"`
	Email        string `validate:"required,email"`
	Name         string `validate:"required"`
	TotalAmount  string `validate:"required"`
	ItemQuantity int32  `validate:"gte=0"`
}

func (s *Usecase) SendOrderConfirmation(ctx context.Context, in OrderConfirmationInput) error {
	ctx, span := s.startSpan(ctx, "SendOrderConfirmation")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid order confirmation input", "order_id", in.OrderID, "error", err)
		return nil
	}

	orderID := strconv.FormatInt(in.OrderID, 10)
	data := s.baseTemplateData()
	data["name"] = in.Name
	data["order_id"] = orderID
	data["total_amount"] = in.TotalAmount
	data["item_quantity"] = in.ItemQuantity
	data["order_url"] = s.cfg.GetString("app.web") + "/orders/" + orderID

	body, err := s.render(entity.TemplateOrderCreated, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render order confirmation", "order_id", in.OrderID, "error", err)
		return nil
	}

	err = s.send(ctx, entity.Email{
		Template: entity.TemplateOrderCreated,
		To:       in.Email,
		Subject:  "Order #" + orderID + " received",
		HTMLBody: body,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send order confirmation", "order_id", in.OrderID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "order confirmation sent", "order_id", in.OrderID, "customer_id", in.CustomerID)
	return nil
}

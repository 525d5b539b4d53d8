package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/notification/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/messaging"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg *messaging.Message) context.Context {
	if cid := msg.Header(keyOfCorrelationID); cid != "" {
		return instrument.SetCorrelationID(ctx, cid)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) CustomerRegistered(ctx context.Context, msg *messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "CustomerRegistered")
	defer span.End()

	slog.InfoContext(ctx, "consume: customer registered", "msg_id", msg.ID, "attempt", msg.Attempt)

	var payload event.CustomerRegisteredMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse customer registered body", "msg_body", string(msg.Body), "error", err)
		return nil
	}

	return h.uc.SendWelcomeEmail(ctx, usecase.WelcomeEmailInput{
		CustomerID: payload.CustomerID,
		Email:      payload.Email,
		Name:       payload.Name,
		Provider:   payload.Provider,
	})
}

func (h *MQHandler) OrderCreated(ctx context.Context, msg *messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OrderCreated")
	defer span.End()

	slog.InfoContext(ctx, "consume: order created", "msg_id", msg.ID, "attempt", msg.Attempt)

	var payload event.OrderCreatedMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse order created body", "msg_body", string(msg.Body), "error", err)
		return nil
	}

	return h.uc.SendOrderConfirmation(ctx, usecase.OrderConfirmationInput{
		OrderID:      payload.OrderID,
		CustomerID:   payload.CustomerID,
		Email:        payload.Email,
		Name:         payload.Name,
		TotalAmount:  payload.TotalAmount,
		ItemQuantity: payload.ItemQuantity,
	})
}

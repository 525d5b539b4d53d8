package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/storefront/internal/order/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/messaging"
	"github.com/shandysiswandi/storefront/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishOrderCreated(ctx context.Context, msg usecase.OrderCreatedEvent) (err error) {
	ctx, span := m.ins.Tracer("order.outbound.mq").Start(ctx, "PublishOrderCreated")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(event.OrderCreatedMessage{
		OrderID:      msg.OrderID,
		CustomerID:   msg.CustomerID,
		Email:        msg.Email,
		Name:         msg.Name,
		TotalAmount:  msg.TotalAmount,
		ItemQuantity: msg.ItemQuantity,
	})
	if err != nil {
		return err
	}

	return m.client.Publish(ctx, event.OrderCreatedDestination, &messaging.Message{
		Key:     []byte(strconv.FormatInt(msg.OrderID, 10)),
		Body:    body,
		Headers: map[string]string{keyOfCorrelationID: instrument.GetCorrelationID(ctx)},
	})
}

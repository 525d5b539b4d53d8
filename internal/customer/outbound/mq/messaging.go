package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/storefront/internal/customer/usecase"
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

func (m *Messaging) PublishCustomerRegistered(ctx context.Context, msg usecase.CustomerRegisteredEvent) error {
	ctx, span := m.ins.Tracer("customer.outbound.mq").Start(ctx, "PublishCustomerRegistered")
	defer span.End()

	body, err := json.Marshal(event.CustomerRegisteredMessage{
		CustomerID: msg.CustomerID,
		Email:      msg.Email,
		Name:       msg.Name,
		Provider:   msg.Provider,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, event.CustomerRegisteredDestination, &messaging.Message{
		Key:     []byte(strconv.FormatInt(msg.CustomerID, 10)),
		Body:    body,
		Headers: map[string]string{keyOfCorrelationID: instrument.GetCorrelationID(ctx)},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

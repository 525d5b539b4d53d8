package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goroutine"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/messaging"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/shared/event"
)

// RegisterMQConsumer starts the consumers listed in
// modules.notification.consumer_names on the goroutine manager.
func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	consumer messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	h := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.notification.consumer_names")
	concurrency := cfg.GetInt("modules.notification.consumer_concurrency")
	if concurrency <= 0 {
		concurrency = 10
	}

	consumers := []struct {
		name    string // consumer group on every driver
		topic   string
		handler messaging.Handler
	}{
		{name: event.CustomerRegisteredConsumerNotification, topic: event.CustomerRegisteredDestination, handler: h.CustomerRegistered},
		{name: event.OrderCreatedConsumerNotification, topic: event.OrderCreatedDestination, handler: h.OrderCreated},
	}

	for _, c := range consumers {
		if !slices.Contains(enabled, c.name) {
			continue
		}

		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "running consumer", "consumer", c.name, "topic", c.topic)
			return consumer.Consume(pCtx, c.topic, c.handler,
				messaging.WithGroup(c.name),
				messaging.WithConcurrency(concurrency),
				messaging.WithMaxInFlight(concurrency),
			)
		})
	}
}

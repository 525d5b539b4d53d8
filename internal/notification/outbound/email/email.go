package email

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Mailer traces deliveries made through the configured mail provider.
type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func NewMailer(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

func (m *Mailer) Send(ctx context.Context, msg mail.Message) error {
	ctx, span := m.ins.Tracer("notification.outbound.email").Start(ctx, "Send")
	defer span.End()

	span.SetAttributes(
		attribute.Int("mail.recipients", len(msg.Recipients())),
		attribute.String("mail.subject", msg.Subject),
	)

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/notification/entity"
)

type WelcomeEmailInput struct {
	CustomerID int64  `validate:"gt=0"`
	Email      string `validate:"required,email"`
	Name       string `validate:"required,max=50"`
	Provider   string
}

// SendWelcomeEmail greets a newly registered customer. Invalid input is
// logged and dropped since redelivering it cannot succeed.
func (s *Usecase) SendWelcomeEmail(ctx context.Context, in WelcomeEmailInput) error {
	ctx, span := s.startSpan(ctx, "SendWelcomeEmail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid welcome email input", "customer_id", in.CustomerID, "error", err)
		return nil
	}

	data := s.baseTemplateData()
	data["name"] = in.Name
	data["provider"] = in.Provider

	body, err := s.render(entity.TemplateWelcome, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome email", "customer_id", in.CustomerID, "error", err)
		return nil
	}

	err = s.send(ctx, entity.Email{
		Template: entity.TemplateWelcome,
		To:       in.Email,
		Subject:  "Welcome to " + s.cfg.GetString("app.name"),
		HTMLBody: body,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "customer_id", in.CustomerID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "welcome email sent", "customer_id", in.CustomerID)
	return nil
}

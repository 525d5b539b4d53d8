package inbound

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/notification/usecase"
)

type uc interface {
	SendWelcomeEmail(ctx context.Context, in usecase.WelcomeEmailInput) error
	SendOrderConfirmation(ctx context.Context, in usecase.OrderConfirmationInput) error
}

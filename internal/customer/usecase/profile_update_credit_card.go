package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type ProfileUpdateCreditCardInput struct {
	CreditCard string `validate:"card_number"`
}

// ProfileUpdateCreditCard stores a card number after checking its format.
// The number is checked and stored exactly as sent; surrounding whitespace
// makes it invalid. Every rejection is a new error value.
func (s *Usecase) ProfileUpdateCreditCard(ctx context.Context, in ProfileUpdateCreditCardInput) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdateCreditCard")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.CreditCard) == "" {
		return nil, reason.RequiredField.New("credit_card", "The credit_card field is required.")
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, reason.InvalidCreditCard.Wrap(err, "credit_card", reason.InvalidCreditCard.Message)
	}

	err = s.repoDB.UpdateCreditCard(ctx, clm.CustomerID, in.CreditCard)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "customer not found", "customer_id", clm.CustomerID)
		return nil, reason.CustomerNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update customer credit card", "customer_id", clm.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.customer(ctx, clm.CustomerID)
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type ProfileUpdateAddressInput struct {
	Address1         string `validate:"required,max=100"`
	Address2         string `validate:"omitempty,max=100"`
	City             string `validate:"required,max=100"`
	Region           string `validate:"required,max=100"`
	PostalCode       string `validate:"required,max=100"`
	Country          string `validate:"required,max=100"`
	ShippingRegionID int32  `validate:"required,gt=0"`
}

func (s *Usecase) ProfileUpdateAddress(ctx context.Context, in ProfileUpdateAddressInput) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdateAddress")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	err = s.repoDB.UpdateAddress(ctx, clm.CustomerID, entity.Address{
		Address1:         in.Address1,
		Address2:         in.Address2,
		City:             in.City,
		Region:           in.Region,
		PostalCode:       in.PostalCode,
		Country:          in.Country,
		ShippingRegionID: in.ShippingRegionID,
	})
	if errors.Is(err, entity.ErrShippingRegionNotFound) {
		return nil, goerror.NewInvalidInput(nil, "shipping_region_id", "The shipping region does not exist.")
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.CustomerNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update customer address", "customer_id", clm.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.customer(ctx, clm.CustomerID)
}

package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
)

func (s *DB) CreateCustomer(ctx context.Context, c entity.Customer) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCustomer")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.CreateCustomer(ctx, sqlc.CreateCustomerParams{
		CustomerID:       c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Password:         c.Password,
		ShippingRegionID: c.ShippingRegionID,
		Social:           c.Social,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}))
	return err
}

func (s *DB) CreateRefreshToken(ctx context.Context, rt entity.RefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.CreateCustomerRefreshToken(ctx, sqlc.CreateCustomerRefreshTokenParams{
		ID:         rt.ID,
		CustomerID: rt.CustomerID,
		Token:      rt.Token,
		ExpiresAt:  rt.ExpiresAt,
	}))
	return err
}

package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
)

func toCustomer(row sqlc.Customer) *entity.Customer {
	return &entity.Customer{
		ID:               row.CustomerID,
		Name:             row.Name,
		Email:            row.Email,
		Password:         row.Password,
		CreditCard:       row.CreditCard,
		Address1:         row.Address1,
		Address2:         row.Address2,
		City:             row.City,
		Region:           row.Region,
		PostalCode:       row.PostalCode,
		Country:          row.Country,
		ShippingRegionID: row.ShippingRegionID,
		DayPhone:         row.DayPhone,
		EvePhone:         row.EvePhone,
		MobPhone:         row.MobPhone,
		AvatarURL:        row.AvatarUrl,
		Social:           row.Social,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func (s *DB) GetCustomerByID(ctx context.Context, id int64) (_ *entity.Customer, err error) {
	ctx, span := s.startSpan(ctx, "GetCustomerByID")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return toCustomer(row), nil
}

func (s *DB) GetCustomerByEmail(ctx context.Context, email string) (_ *entity.Customer, err error) {
	ctx, span := s.startSpan(ctx, "GetCustomerByEmail")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, s.mapError(err)
	}
	return toCustomer(row), nil
}

func (s *DB) GetRefreshToken(ctx context.Context, token string) (_ *entity.RefreshToken, err error) {
	ctx, span := s.startSpan(ctx, "GetRefreshToken")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetCustomerRefreshToken(ctx, token)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &entity.RefreshToken{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Token:      row.Token,
		ExpiresAt:  row.ExpiresAt,
		Revoked:    row.Revoked,
	}, nil
}

package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

func (s *DB) UpdateProfile(ctx context.Context, id int64, p entity.Profile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfile")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.UpdateCustomerProfile(ctx, sqlc.UpdateCustomerProfileParams{
		Name:       p.Name,
		Email:      p.Email,
		Password:   p.Password,
		DayPhone:   p.DayPhone,
		EvePhone:   p.EvePhone,
		MobPhone:   p.MobPhone,
		CustomerID: id,
	}))
	return err
}

func (s *DB) UpdateAddress(ctx context.Context, id int64, a entity.Address) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAddress")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.UpdateCustomerAddress(ctx, sqlc.UpdateCustomerAddressParams{
		Address1:         a.Address1,
		Address2:         a.Address2,
		City:             a.City,
		Region:           a.Region,
		PostalCode:       a.PostalCode,
		Country:          a.Country,
		ShippingRegionID: a.ShippingRegionID,
		CustomerID:       id,
	}))
	return err
}

func (s *DB) UpdateCreditCard(ctx context.Context, id int64, card string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateCreditCard")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.UpdateCustomerCreditCard(ctx, sqlc.UpdateCustomerCreditCardParams{
		CreditCard: card,
		CustomerID: id,
	}))
	return err
}

func (s *DB) UpdatePassword(ctx context.Context, id int64, hashed string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePassword")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.UpdateCustomerPassword(ctx, sqlc.UpdateCustomerPasswordParams{
		Password:   hashed,
		CustomerID: id,
	}))
	return err
}

func (s *DB) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAvatar")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.UpdateCustomerAvatar(ctx, sqlc.UpdateCustomerAvatarParams{
		AvatarUrl:  avatarURL,
		CustomerID: id,
	}))
	return err
}

func (s *DB) UpdateSocial(ctx context.Context, id int64, provider string, p entity.SocialProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateSocial")
	defer func() { s.endSpan(span, err) }()

	err = s.affected(s.query.MergeCustomerSocial(ctx, sqlc.MergeCustomerSocialParams{
		Patch:      valueobject.JSONMap{provider: p.ID, provider + "_name": p.Name},
		CustomerID: id,
	}))
	return err
}

func (s *DB) RotateRefreshToken(ctx context.Context, oldID int64, next entity.RefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "RotateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	wtx := s.query.WithTx(tx)

	rows, err := wtx.RevokeCustomerRefreshToken(ctx, oldID)
	if err != nil {
		return s.mapError(err)
	}
	if rows == 0 {
		return goerror.ErrNotFound
	}

	if err = wtx.CreateCustomerRefreshToken(ctx, sqlc.CreateCustomerRefreshTokenParams{
		ID:         next.ID,
		CustomerID: next.CustomerID,
		Token:      next.Token,
		ExpiresAt:  next.ExpiresAt,
	}); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

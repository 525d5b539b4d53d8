package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	oldHash, err := s.hmac.Hash(in.RefreshToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash old refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	rt, err := s.repoDB.GetRefreshToken(ctx, string(oldHash))
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "customer refresh token not found")
		return nil, reason.InvalidSession.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	if rt.Revoked || s.clock.Now().After(rt.ExpiresAt) {
		slog.WarnContext(ctx, "refresh token is revoked or expired", "refresh_token_id", rt.ID)
		return nil, reason.InvalidSession.New()
	}

	c, err := s.repoDB.GetCustomerByID(ctx, rt.CustomerID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.InvalidSession.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by id", "customer_id", rt.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	acToken, err := s.jwt.Generate(c.ID, c.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	newToken := s.token.Generate()
	newHash, err := s.hmac.Hash(newToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	err = s.repoDB.RotateRefreshToken(ctx, rt.ID, entity.RefreshToken{
		ID:         s.uid.Generate(),
		CustomerID: c.ID,
		Token:      string(newHash),
		ExpiresAt:  s.clock.Now().Add(s.cfg.GetDay("modules.customer.refresh_token_ttl_days")),
	})
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "refresh token already rotated", "refresh_token_id", rt.ID)
		return nil, reason.InvalidSession.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo rotate refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AuthOutput{
		Customer:     *c,
		AccessToken:  "Bearer " + acToken,
		RefreshToken: newToken,
		ExpiresIn:    formatTTL(s.jwt.TTL()),
	}, nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type LoginFacebookInput struct {
	AccessToken string `validate:"required"`
}

// LoginFacebook signs in the owner of a Facebook user access token, creating
// the customer on first use.
func (s *Usecase) LoginFacebook(ctx context.Context, in LoginFacebookInput) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginFacebook")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	profile, err := s.repoSocial.Profile(ctx, in.AccessToken)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch facebook profile", "error", err)
		return nil, reason.InvalidSocial.New()
	}

	email := strings.TrimSpace(strings.ToLower(profile.Email))
	if email == "" {
		slog.WarnContext(ctx, "facebook profile has no email", "facebook_id", profile.ID)
		return nil, reason.InvalidSocial.New()
	}

	c, err := s.repoDB.GetCustomerByEmail(ctx, email)
	if err == nil {
		if c.Social.GetString(entity.ProviderFacebook) == "" {
			if err := s.repoDB.UpdateSocial(ctx, c.ID, entity.ProviderFacebook, *profile); err != nil {
				slog.ErrorContext(ctx, "failed to repo update customer social", "customer_id", c.ID, "error", err)
			}
		}
		return s.issueTokens(ctx, c)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	created := entity.Customer{
		ID:               s.uid.Generate(),
		Name:             strings.TrimSpace(profile.Name),
		Email:            email,
		ShippingRegionID: entity.DefaultShippingRegionID,
		Social: valueobject.JSONMap{
			entity.ProviderFacebook: profile.ID,
			"facebook_name":         profile.Name,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repoDB.CreateCustomer(ctx, created); err != nil {
		slog.ErrorContext(ctx, "failed to repo create customer", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.publishRegistered(ctx, &created, entity.ProviderFacebook)

	return s.issueTokens(ctx, &created)
}

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

type RegisterInput struct {
	Name     string `validate:"required,min=2,max=50,alphaspace"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,password"`
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetCustomerByEmail(ctx, in.Email)
	if err == nil {
		return nil, reason.EmailExists.New("email", "The email already exists.")
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.argon2id.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	c := entity.Customer{
		ID:               s.uid.Generate(),
		Name:             in.Name,
		Email:            in.Email,
		Password:         string(hashedPassword),
		ShippingRegionID: entity.DefaultShippingRegionID,
		Social:           valueobject.JSONMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.repoDB.CreateCustomer(ctx, c)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, reason.EmailExists.New("email", "The email already exists.")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create customer", "email", c.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.publishRegistered(ctx, &c, "")

	return s.issueTokens(ctx, &c)
}

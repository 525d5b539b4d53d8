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

type ProfileUpdateInput struct {
	Name     string `validate:"required,min=2,max=50,alphaspace"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"omitempty,password"`
	DayPhone string `validate:"omitempty,max=100"`
	EvePhone string `validate:"omitempty,max=100"`
	MobPhone string `validate:"omitempty,max=100"`
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	p := entity.Profile{
		Name:     in.Name,
		Email:    in.Email,
		DayPhone: in.DayPhone,
		EvePhone: in.EvePhone,
		MobPhone: in.MobPhone,
	}
	if in.Password != "" {
		hashed, err := s.argon2id.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "error", err)
			return nil, goerror.NewServer(err)
		}
		p.Password = string(hashed)
	}

	err = s.repoDB.UpdateProfile(ctx, clm.CustomerID, p)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, reason.EmailExists.New("email", "The email already exists.")
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.CustomerNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update customer profile", "customer_id", clm.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.customer(ctx, clm.CustomerID)
}

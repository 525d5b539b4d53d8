package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	c, err := s.repoDB.GetCustomerByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "customer account not found", "email", in.Email)
		return nil, reason.InvalidCredential.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.verifyPassword(ctx, c.ID, c.Password, in.Password) {
		slog.WarnContext(ctx, "password customer account not match", "customer_id", c.ID)
		return nil, reason.InvalidCredential.New()
	}

	return s.issueTokens(ctx, c)
}

func isLegacyHash(hashed string) bool {
	return strings.HasPrefix(hashed, "$2a$") || strings.HasPrefix(hashed, "$2b$") || strings.HasPrefix(hashed, "$2y$")
}

// verifyPassword checks plain against the stored hash. A matching legacy bcrypt
// hash is replaced with an argon2id one; failing to do so does not fail login.
func (s *Usecase) verifyPassword(ctx context.Context, customerID int64, hashed, plain string) bool {
	// social-only accounts have no password
	if hashed == "" {
		return false
	}

	if !isLegacyHash(hashed) || s.bcrypt == nil {
		return s.argon2id.Verify(hashed, plain)
	}

	if !s.bcrypt.Verify(hashed, plain) {
		return false
	}

	upgraded, err := s.argon2id.Hash(plain)
	if err != nil {
		slog.WarnContext(ctx, "failed to rehash legacy password", "customer_id", customerID, "error", err)
		return true
	}
	if err := s.repoDB.UpdatePassword(ctx, customerID, string(upgraded)); err != nil {
		slog.WarnContext(ctx, "failed to repo update password", "customer_id", customerID, "error", err)
	}

	return true
}

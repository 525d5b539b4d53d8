package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/hash"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"go.opentelemetry.io/otel/trace"
)

type CustomerRegisteredEvent struct {
	CustomerID int64
	Email      string
	Name       string
	Provider   string
}

type repoMessaging interface {
	PublishCustomerRegistered(ctx context.Context, msg CustomerRegisteredEvent) error
}

type repoSocial interface {
	Profile(ctx context.Context, accessToken string) (*entity.SocialProfile, error)
}

type repoDB interface {
	GetCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	GetRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	CreateCustomer(ctx context.Context, c entity.Customer) error
	CreateRefreshToken(ctx context.Context, rt entity.RefreshToken) error

	UpdateProfile(ctx context.Context, id int64, p entity.Profile) error
	UpdateAddress(ctx context.Context, id int64, a entity.Address) error
	UpdateCreditCard(ctx context.Context, id int64, card string) error
	UpdatePassword(ctx context.Context, id int64, hashed string) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	UpdateSocial(ctx context.Context, id int64, provider string, p entity.SocialProfile) error

	RotateRefreshToken(ctx context.Context, oldID int64, next entity.RefreshToken) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoSocial    repoSocial
	storage       storage.Storage
	validator     validator.Validator
	cfg           config.Config
	argon2id      hash.Hash
	bcrypt        hash.Hash
	hmac          hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	token         uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoSocial    repoSocial
	Storage       storage.Storage
	Validator     validator.Validator
	Config        config.Config
	Argon2ID      hash.Hash
	// Bcrypt verifies passwords imported from the legacy store; they are
	// rehashed with Argon2ID on the next successful login.
	Bcrypt     hash.Hash
	HMAC       hash.Hash
	UID        uid.NumberID
	UUID       uid.StringID
	Token      uid.StringID
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		repoSocial:    dep.RepoSocial,
		storage:       dep.Storage,
		validator:     dep.Validator,
		cfg:           dep.Config,
		argon2id:      dep.Argon2ID,
		bcrypt:        dep.Bcrypt,
		hmac:          dep.HMAC,
		uid:           dep.UID,
		uuid:          dep.UUID,
		token:         dep.Token,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("customer.usecase").Start(ctx, name)
}

// AuthOutput is returned by every operation that signs a customer in.
type AuthOutput struct {
	Customer     entity.Customer
	AccessToken  string
	RefreshToken string
	ExpiresIn    string
}

func (s *Usecase) issueTokens(ctx context.Context, c *entity.Customer) (*AuthOutput, error) {
	acToken, err := s.jwt.Generate(c.ID, c.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	refToken := s.token.Generate()
	refTokenHash, err := s.hmac.Hash(refToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.CreateRefreshToken(ctx, entity.RefreshToken{
		ID:         s.uid.Generate(),
		CustomerID: c.ID,
		Token:      string(refTokenHash),
		ExpiresAt:  s.clock.Now().Add(s.cfg.GetDay("modules.customer.refresh_token_ttl_days")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create refresh token", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AuthOutput{
		Customer:     *c,
		AccessToken:  "Bearer " + acToken,
		RefreshToken: refToken,
		ExpiresIn:    formatTTL(s.jwt.TTL()),
	}, nil
}

// formatTTL renders whole hours as "24h" and anything else with time.Duration.String.
func formatTTL(d time.Duration) string {
	if d > 0 && d%time.Hour == 0 {
		return fmt.Sprintf("%dh", d/time.Hour)
	}
	return d.String()
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, reason.Unauthorized.New()
	}
	return clm, nil
}

func (s *Usecase) customer(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := s.repoDB.GetCustomerByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "customer not found", "customer_id", id)
		return nil, reason.CustomerNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer by id", "customer_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	return c, nil
}

func (s *Usecase) publishRegistered(ctx context.Context, c *entity.Customer, provider string) {
	if err := s.repoMessaging.PublishCustomerRegistered(ctx, CustomerRegisteredEvent{
		CustomerID: c.ID,
		Email:      c.Email,
		Name:       c.Name,
		Provider:   provider,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish customer registered", "customer_id", c.ID, "error", err)
	}
}

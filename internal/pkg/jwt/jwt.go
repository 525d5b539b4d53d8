package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")
	ErrSigningKeyTooShort   = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")
	ErrTokenExpired         = errors.New("JWT token has expired")
	ErrInvalidToken         = errors.New("invalid token")
)

// JWT issues and verifies access tokens for customers.
type JWT interface {
	Generate(customerID int64, email string) (string, error)
	Verify(tokenStr string) (Claims, error)
	// TTL is how long generated tokens stay valid.
	TTL() time.Duration
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	Secret    []byte
	Issuer    string
	Audiences []string
	TTL       time.Duration
	Clock     clocker
	UUID      generator // token ids (jti)
}

// Claims are the registered claims plus the customer the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID    int64  `json:"customer_id,string"`
	CustomerEmail string `json:"customer_email"`
}

// GetAuth returns the claims stored in ctx, or nil for anonymous requests.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores verified claims in ctx.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}

// ExtractToken returns the raw token from an Authorization or USER-KEY header
// value. "Bearer <t>" yields t; a USER-KEY value without a scheme is the token
// itself.
func ExtractToken(value string, schemeRequired bool) string {
	fields := strings.Fields(value)
	switch len(fields) {
	case 1:
		if schemeRequired {
			return ""
		}
		return fields[0]
	case 2:
		if schemeRequired && !strings.EqualFold(fields[0], "Bearer") {
			return ""
		}
		return fields[1]
	default:
		return ""
	}
}

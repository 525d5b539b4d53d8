package entity

import (
	"errors"
	"time"

	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

const ProviderFacebook = "facebook"

// DefaultShippingRegionID is the placeholder region every new customer starts with.
const DefaultShippingRegionID int32 = 1

// ErrShippingRegionNotFound is returned when an address points at an unknown region.
var ErrShippingRegionNotFound = errors.New("shipping region not found")

type Customer struct {
	ID               int64
	Name             string
	Email            string
	Password         string // hashed
	CreditCard       string
	Address1         string
	Address2         string
	City             string
	Region           string
	PostalCode       string
	Country          string
	ShippingRegionID int32
	DayPhone         string
	EvePhone         string
	MobPhone         string
	AvatarURL        string
	Social           valueobject.JSONMap
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Profile struct {
	Name     string
	Email    string
	Password string // hashed, empty keeps the current one
	DayPhone string
	EvePhone string
	MobPhone string
}

type Address struct {
	Address1         string
	Address2         string
	City             string
	Region           string
	PostalCode       string
	Country          string
	ShippingRegionID int32
}

type RefreshToken struct {
	ID         int64
	CustomerID int64
	Token      string // hmac of the value handed to the client
	ExpiresAt  time.Time
	Revoked    bool
}

// SocialProfile is what an identity provider tells us about the token owner.
type SocialProfile struct {
	Provider string
	ID       string
	Name     string
	Email    string
}

package inbound

import (
	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/customer/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/cardnumber"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginFacebookRequest struct {
	AccessToken string `json:"access_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	DayPhone string `json:"day_phone"`
	EvePhone string `json:"eve_phone"`
	MobPhone string `json:"mob_phone"`
}

type ProfileUpdateAddressRequest struct {
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int32  `json:"shipping_region_id"`
}

type ProfileUpdateCreditCardRequest struct {
	CreditCard string `json:"credit_card"`
}

type CustomerResponse struct {
	ID               int64  `json:"customer_id,string"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int32  `json:"shipping_region_id"`
	DayPhone         string `json:"day_phone"`
	EvePhone         string `json:"eve_phone"`
	MobPhone         string `json:"mob_phone"`
	CreditCard       string `json:"credit_card"`
	AvatarURL        string `json:"avatar_url"`
}

func toCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Address1:         c.Address1,
		Address2:         c.Address2,
		City:             c.City,
		Region:           c.Region,
		PostalCode:       c.PostalCode,
		Country:          c.Country,
		ShippingRegionID: c.ShippingRegionID,
		DayPhone:         c.DayPhone,
		EvePhone:         c.EvePhone,
		MobPhone:         c.MobPhone,
		CreditCard:       cardnumber.Mask(c.CreditCard),
		AvatarURL:        c.AvatarURL,
	}
}

type AuthResponse struct {
	Customer     CustomerResponse `json:"customer"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    string           `json:"expires_in"`

	status int
}

func (a AuthResponse) StatusCode() int { return a.status }

func toAuthResponse(out *usecase.AuthOutput, status int) AuthResponse {
	return AuthResponse{
		Customer:     toCustomerResponse(&out.Customer),
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
		status:       status,
	}
}

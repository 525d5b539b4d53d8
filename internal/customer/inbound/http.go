package inbound

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/customer/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.AuthOutput, error)
	LoginFacebook(ctx context.Context, in usecase.LoginFacebookInput) (*usecase.AuthOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.AuthOutput, error)

	Profile(ctx context.Context) (*entity.Customer, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) (*entity.Customer, error)
	ProfileUpdateAddress(ctx context.Context, in usecase.ProfileUpdateAddressInput) (*entity.Customer, error)
	ProfileUpdateCreditCard(ctx context.Context, in usecase.ProfileUpdateCreditCardInput) (*entity.Customer, error)
	ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) (*entity.Customer, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/customer/register", end.Register)
	r.POST("/api/v1/customer/login", end.Login)
	r.POST("/api/v1/customer/login/facebook", end.LoginFacebook)
	r.POST("/api/v1/customer/refresh", end.RefreshToken)

	r.GET("/api/v1/customer/profile", end.Profile)
	r.PUT("/api/v1/customer/profile", end.ProfileUpdate)
	r.PUT("/api/v1/customer/profile/address", end.ProfileUpdateAddress)
	r.PUT("/api/v1/customer/profile/credit-card", end.ProfileUpdateCreditCard)
	r.PUT("/api/v1/customer/profile/avatar", end.ProfileUpdateAvatar)
}

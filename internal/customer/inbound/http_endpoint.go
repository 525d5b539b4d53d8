package inbound

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/storefront/internal/customer/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Register creates a customer account and signs it in.
// @Summary Register customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} router.successResponse{data=AuthResponse} "Registered"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already exists (USR_04)"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/customer/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return toAuthResponse(out, http.StatusCreated), nil
}

// Login signs a customer in with email and password.
// @Summary Login
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} router.successResponse{data=AuthResponse} "Signed in"
// @Failure 401 {object} router.errorResponse "Email or password invalid (USR_01)"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/customer/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Login(r.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}

	return toAuthResponse(out, http.StatusOK), nil
}

// LoginFacebook signs a customer in with a Facebook user access token.
// @Summary Login with Facebook
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body LoginFacebookRequest true "Facebook token"
// @Success 200 {object} router.successResponse{data=AuthResponse} "Signed in"
// @Failure 400 {object} router.errorResponse "Invalid token"
// @Router /api/v1/customer/login/facebook [post]
func (h *HTTPEndpoint) LoginFacebook(r *router.Request) (any, error) {
	var req LoginFacebookRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.LoginFacebook(r.Context(), usecase.LoginFacebookInput{AccessToken: req.AccessToken})
	if err != nil {
		return nil, err
	}

	return toAuthResponse(out, http.StatusOK), nil
}

// RefreshToken exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} router.successResponse{data=AuthResponse} "Rotated"
// @Failure 401 {object} router.errorResponse "Invalid or expired refresh token"
// @Router /api/v1/customer/refresh [post]
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return toAuthResponse(out, http.StatusOK), nil
}

// Profile returns the authenticated customer.
// @Summary Get profile
// @Tags Customer
// @Security BearerAuth
// @Security UserKey
// @Produce json
// @Success 200 {object} router.successResponse{data=CustomerResponse} "Customer"
// @Failure 401 {object} router.errorResponse "Unauthorized (AUT_02)"
// @Failure 404 {object} router.errorResponse "Customer not found (USR_10)"
// @Router /api/v1/customer/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	c, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(c), nil
}

// ProfileUpdate changes name, email, password and phones.
// @Summary Update profile
// @Tags Customer
// @Security BearerAuth
// @Security UserKey
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Profile payload"
// @Success 200 {object} router.successResponse{data=CustomerResponse} "Customer"
// @Failure 409 {object} router.errorResponse "Email already exists (USR_04)"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/customer/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	c, err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		DayPhone: req.DayPhone,
		EvePhone: req.EvePhone,
		MobPhone: req.MobPhone,
	})
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(c), nil
}

// ProfileUpdateAddress changes the shipping address.
// @Summary Update address
// @Tags Customer
// @Security BearerAuth
// @Security UserKey
// @Accept json
// @Produce json
// @Param request body ProfileUpdateAddressRequest true "Address payload"
// @Success 200 {object} router.successResponse{data=CustomerResponse} "Customer"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/customer/profile/address [put]
func (h *HTTPEndpoint) ProfileUpdateAddress(r *router.Request) (any, error) {
	var req ProfileUpdateAddressRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	c, err := h.uc.ProfileUpdateAddress(r.Context(), usecase.ProfileUpdateAddressInput{
		Address1:         req.Address1,
		Address2:         req.Address2,
		City:             req.City,
		Region:           req.Region,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		ShippingRegionID: req.ShippingRegionID,
	})
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(c), nil
}

// ProfileUpdateCreditCard stores the customer's card number.
// @Summary Update credit card
// @Tags Customer
// @Security BearerAuth
// @Security UserKey
// @Accept json
// @Produce json
// @Param request body ProfileUpdateCreditCardRequest true "Card payload"
// @Success 200 {object} router.successResponse{data=CustomerResponse} "Customer"
// @Failure 404 {object} router.errorResponse "Customer not found (USR_10)"
// @Failure 422 {object} router.errorResponse "Missing (COM_02) or invalid (USR_08) card"
// @Router /api/v1/customer/profile/credit-card [put]
func (h *HTTPEndpoint) ProfileUpdateCreditCard(r *router.Request) (any, error) {
	var req ProfileUpdateCreditCardRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	c, err := h.uc.ProfileUpdateCreditCard(r.Context(), usecase.ProfileUpdateCreditCardInput{CreditCard: req.CreditCard})
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(c), nil
}

// ProfileUpdateAvatar uploads a new avatar image.
// @Summary Update avatar
// @Tags Customer
// @Security BearerAuth
// @Security UserKey
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} router.successResponse{data=CustomerResponse} "Customer"
// @Failure 422 {object} router.errorResponse "Missing, unsupported or oversized image"
// @Router /api/v1/customer/profile/avatar [put]
func (h *HTTPEndpoint) ProfileUpdateAvatar(r *router.Request) (any, error) {
	ctx := r.Context()

	file, err := r.StreamSingleFile("avatar")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	c, err := h.uc.ProfileUpdateAvatar(ctx, usecase.ProfileUpdateAvatarInput{File: file})
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(c), nil
}

package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/customer/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUsecase struct{ mock.Mock }

func (m *mockUsecase) auth(args mock.Arguments) (*usecase.AuthOutput, error) {
	out, _ := args.Get(0).(*usecase.AuthOutput)
	return out, args.Error(1)
}

func (m *mockUsecase) customer(args mock.Arguments) (*entity.Customer, error) {
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return m.auth(m.Called(ctx, in))
}

func (m *mockUsecase) Login(ctx context.Context, in usecase.LoginInput) (*usecase.AuthOutput, error) {
	return m.auth(m.Called(ctx, in))
}

func (m *mockUsecase) LoginFacebook(ctx context.Context, in usecase.LoginFacebookInput) (*usecase.AuthOutput, error) {
	return m.auth(m.Called(ctx, in))
}

func (m *mockUsecase) RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	return m.auth(m.Called(ctx, in))
}

func (m *mockUsecase) Profile(ctx context.Context) (*entity.Customer, error) {
	return m.customer(m.Called(ctx))
}

func (m *mockUsecase) ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) (*entity.Customer, error) {
	return m.customer(m.Called(ctx, in))
}

func (m *mockUsecase) ProfileUpdateAddress(ctx context.Context, in usecase.ProfileUpdateAddressInput) (*entity.Customer, error) {
	return m.customer(m.Called(ctx, in))
}

func (m *mockUsecase) ProfileUpdateCreditCard(ctx context.Context, in usecase.ProfileUpdateCreditCardInput) (*entity.Customer, error) {
	return m.customer(m.Called(ctx, in))
}

func (m *mockUsecase) ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) (*entity.Customer, error) {
	return m.customer(m.Called(ctx, in))
}

type fakeJWT struct{}

func (fakeJWT) Generate(int64, string) (string, error) { return "good", nil }
func (fakeJWT) TTL() time.Duration                     { return time.Hour }
func (fakeJWT) Verify(tok string) (jwt.Claims, error) {
	if tok != "good" {
		return jwt.Claims{}, jwt.ErrInvalidToken
	}
	return jwt.Claims{CustomerID: 7}, nil
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func setup(t *testing.T) (*mockUsecase, http.Handler) {
	t.Helper()
	uc := new(mockUsecase)
	t.Cleanup(func() { uc.AssertExpectations(t) })

	r := router.NewRouter(router.Config{UUID: fixedID("cid"), JWT: fakeJWT{}})
	RegisterHTTPEndpoint(r, uc)
	return uc, r
}

func call(t *testing.T, h http.Handler, req *http.Request) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRegister(t *testing.T) {
	uc, h := setup(t)
	uc.On("Register", mock.Anything, usecase.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "Secret123!"}).
		Return(&usecase.AuthOutput{
			Customer:    entity.Customer{ID: 42, Name: "Jane", CreditCard: "4532015112830366"},
			AccessToken: "Bearer x",
			ExpiresIn:   "24h",
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/register",
		bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","password":"Secret123!"}`))
	code, body := call(t, h, req)

	assert.Equal(t, http.StatusCreated, code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Bearer x", data["access_token"])
	assert.Equal(t, "24h", data["expires_in"])
	customer := data["customer"].(map[string]any)
	assert.Equal(t, "42", customer["customer_id"])
	assert.Equal(t, "************0366", customer["credit_card"])
}

func TestRegister_UnknownField(t *testing.T) {
	_, h := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/register", bytes.NewBufferString(`{"nickname":"x"}`))
	code, _ := call(t, h, req)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreditCard_RequiresAuth(t *testing.T) {
	_, h := setup(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/customer/profile/credit-card", bytes.NewBufferString(`{"credit_card":"x"}`))
	code, body := call(t, h, req)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUT_02", body["code"])
}

func TestCreditCard_UserKeyAndReasonEnvelope(t *testing.T) {
	uc, h := setup(t)
	uc.On("ProfileUpdateCreditCard", mock.Anything, usecase.ProfileUpdateCreditCardInput{CreditCard: "1111111111111111"}).
		Return(nil, reason.InvalidCreditCard.New("credit_card", reason.InvalidCreditCard.Message))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/customer/profile/credit-card",
		bytes.NewBufferString(`{"credit_card":"1111111111111111"}`))
	req.Header.Set("USER-KEY", "good")
	code, body := call(t, h, req)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "USR_08", body["code"])
	assert.Equal(t, map[string]any{"credit_card": "This is an invalid Credit Card."}, body["error"])
}

func TestProfileUpdateAvatar(t *testing.T) {
	uc, h := setup(t)
	uc.On("ProfileUpdateAvatar", mock.Anything, mock.Anything).
		Return(&entity.Customer{ID: 7, AvatarURL: "https://cdn/a.png"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "a.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/customer/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer good")
	code, body := call(t, h, req)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "https://cdn/a.png", body["data"].(map[string]any)["avatar_url"])
}

package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/stretchr/testify/mock"
)

type mockRepoDB struct{ mock.Mock }

func (m *mockRepoDB) GetCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockRepoDB) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockRepoDB) GetRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	rt, _ := args.Get(0).(*entity.RefreshToken)
	return rt, args.Error(1)
}

func (m *mockRepoDB) CreateCustomer(ctx context.Context, c entity.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepoDB) CreateRefreshToken(ctx context.Context, rt entity.RefreshToken) error {
	return m.Called(ctx, rt).Error(0)
}

func (m *mockRepoDB) UpdateProfile(ctx context.Context, id int64, p entity.Profile) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *mockRepoDB) UpdateAddress(ctx context.Context, id int64, a entity.Address) error {
	return m.Called(ctx, id, a).Error(0)
}

func (m *mockRepoDB) UpdateCreditCard(ctx context.Context, id int64, card string) error {
	return m.Called(ctx, id, card).Error(0)
}

func (m *mockRepoDB) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return m.Called(ctx, id, hashed).Error(0)
}

func (m *mockRepoDB) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	return m.Called(ctx, id, avatarURL).Error(0)
}

func (m *mockRepoDB) UpdateSocial(ctx context.Context, id int64, provider string, p entity.SocialProfile) error {
	return m.Called(ctx, id, provider, p).Error(0)
}

func (m *mockRepoDB) RotateRefreshToken(ctx context.Context, oldID int64, next entity.RefreshToken) error {
	return m.Called(ctx, oldID, next).Error(0)
}

type mockRepoMessaging struct{ mock.Mock }

func (m *mockRepoMessaging) PublishCustomerRegistered(ctx context.Context, msg CustomerRegisteredEvent) error {
	return m.Called(ctx, msg).Error(0)
}

type mockRepoSocial struct{ mock.Mock }

func (m *mockRepoSocial) Profile(ctx context.Context, accessToken string) (*entity.SocialProfile, error) {
	args := m.Called(ctx, accessToken)
	p, _ := args.Get(0).(*entity.SocialProfile)
	return p, args.Error(1)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Close() error { return nil }

func (m *mockStorage) Put(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.Object, error) {
	// drain so size limits are exercised
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return storage.Object{}, err
	}
	args := m.Called(ctx, bucket, key, opts)
	return storage.Object{Bucket: bucket, Key: key, Size: n}, args.Error(0)
}

func (m *mockStorage) Stat(ctx context.Context, bucket, key string) (storage.Object, error) {
	args := m.Called(ctx, bucket, key)
	return storage.Object{}, args.Error(0)
}

func (m *mockStorage) Delete(ctx context.Context, bucket, key string) error {
	return m.Called(ctx, bucket, key).Error(0)
}

func (m *mockStorage) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expiry)
	return args.String(0), args.Error(1)
}

// fakeHash prefixes instead of hashing so expectations stay readable.
type fakeHash struct{}

func (fakeHash) Hash(s string) ([]byte, error) { return []byte("h:" + s), nil }
func (fakeHash) Verify(hashed, s string) bool  { return hashed == "h:"+s }

type fakeJWT struct{}

func (fakeJWT) Generate(customerID int64, email string) (string, error) {
	return "jwt-" + email, nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, jwt.ErrInvalidToken }
func (fakeJWT) TTL() time.Duration                { return 24 * time.Hour }

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 { s.n++; return s.n }

type staticString string

func (s staticString) Generate() string { return string(s) }

func authCtx(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{CustomerID: id, CustomerEmail: "jane@example.com"})
}

func pngReader() io.Reader {
	return strings.NewReader("\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 64))
}

func bytesReader(s string) io.Reader { return strings.NewReader(s) }

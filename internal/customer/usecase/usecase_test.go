package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/hash"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

const testConfig = `
modules:
  customer:
    refresh_token_ttl_days: 30
    avatar_bucket: avatars
    avatar_base_url: https://cdn.example.com
    avatar_max_size_bytes: 1024
`

type UsecaseSuite struct {
	suite.Suite

	db      *mockRepoDB
	mq      *mockRepoMessaging
	social  *mockRepoSocial
	storage *mockStorage
	uc      *Usecase
}

func (s *UsecaseSuite) SetupTest() {
	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	s.Require().NoError(err)
	v, err := validator.NewV10Validator()
	s.Require().NoError(err)

	s.db = new(mockRepoDB)
	s.mq = new(mockRepoMessaging)
	s.social = new(mockRepoSocial)
	s.storage = new(mockStorage)
	s.uc = New(Dependency{
		RepoDB:        s.db,
		RepoMessaging: s.mq,
		RepoSocial:    s.social,
		Storage:       s.storage,
		Validator:     v,
		Config:        cfg,
		Argon2ID:      fakeHash{},
		Bcrypt:        hash.NewBcrypt(4, ""),
		HMAC:          fakeHash{},
		UID:           &seqID{n: 100},
		UUID:          staticString("0190f5d2-aaaa-7bbb-8ccc-000000000001"),
		Token:         staticString("refresh-1"),
		Clock:         clock.Fixed(now),
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
	})
}

func (s *UsecaseSuite) TearDownTest() {
	s.db.AssertExpectations(s.T())
	s.mq.AssertExpectations(s.T())
	s.social.AssertExpectations(s.T())
	s.storage.AssertExpectations(s.T())
}

func TestUsecase(t *testing.T) {
	suite.Run(t, new(UsecaseSuite))
}

func (s *UsecaseSuite) TestRegister() {
	ctx := context.Background()

	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(nil, goerror.ErrNotFound)
	s.db.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c entity.Customer) bool {
		return c.ID == 101 && c.Password == "h:Secret123!" && c.ShippingRegionID == 1
	})).Return(nil)
	s.mq.On("PublishCustomerRegistered", mock.Anything, CustomerRegisteredEvent{
		CustomerID: 101, Email: "jane@example.com", Name: "Jane Doe",
	}).Return(nil)
	s.db.On("CreateRefreshToken", mock.Anything, entity.RefreshToken{
		ID: 102, CustomerID: 101, Token: "h:refresh-1", ExpiresAt: now.Add(30 * 24 * time.Hour),
	}).Return(nil)

	out, err := s.uc.Register(ctx, RegisterInput{Name: " Jane Doe ", Email: "Jane@Example.com", Password: "Secret123!"})
	s.Require().NoError(err)
	s.Equal("Bearer jwt-jane@example.com", out.AccessToken)
	s.Equal("refresh-1", out.RefreshToken)
	s.Equal("24h", out.ExpiresIn)
	s.Equal(int64(101), out.Customer.ID)
}

func (s *UsecaseSuite) TestRegister_EmailExists() {
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(&entity.Customer{ID: 1}, nil)

	_, err := s.uc.Register(context.Background(), RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "Secret123!"})
	s.True(reason.EmailExists.Is(err))
}

func (s *UsecaseSuite) TestRegister_PublishFailureDoesNotFail() {
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(nil, goerror.ErrNotFound)
	s.db.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil)
	s.mq.On("PublishCustomerRegistered", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	s.db.On("CreateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	_, err := s.uc.Register(context.Background(), RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "Secret123!"})
	s.NoError(err)
}

func (s *UsecaseSuite) TestRegister_Invalid() {
	_, err := s.uc.Register(context.Background(), RegisterInput{Name: "J4ne", Email: "nope", Password: "short"})

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(goerror.CodeInvalidInput, gerr.Code())
}

func (s *UsecaseSuite) TestLogin() {
	c := &entity.Customer{ID: 7, Email: "jane@example.com", Password: "h:Secret123!"}
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(c, nil)
	s.db.On("CreateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	out, err := s.uc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "Secret123!"})
	s.Require().NoError(err)
	s.Equal(int64(7), out.Customer.ID)
}

func (s *UsecaseSuite) TestLogin_LegacyBcryptUpgraded() {
	legacy, err := hash.NewBcrypt(4, "").Hash("Secret123!")
	s.Require().NoError(err)

	c := &entity.Customer{ID: 7, Email: "jane@example.com", Password: string(legacy)}
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(c, nil)
	s.db.On("UpdatePassword", mock.Anything, int64(7), "h:Secret123!").Return(nil)
	s.db.On("CreateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	_, err = s.uc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "Secret123!"})
	s.Require().NoError(err)
}

func (s *UsecaseSuite) TestLogin_Rejected() {
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").
		Return(&entity.Customer{ID: 7, Password: "h:Secret123!"}, nil).Once()
	s.db.On("GetCustomerByEmail", mock.Anything, "ghost@example.com").Return(nil, goerror.ErrNotFound).Once()
	s.db.On("GetCustomerByEmail", mock.Anything, "social@example.com").Return(&entity.Customer{ID: 8}, nil).Once()

	for _, email := range []string{"jane@example.com", "ghost@example.com", "social@example.com"} {
		_, err := s.uc.Login(context.Background(), LoginInput{Email: email, Password: "wrong-password"})
		s.True(reason.InvalidCredential.Is(err), email)

		var gerr *goerror.Error
		s.Require().ErrorAs(err, &gerr)
		s.Equal(401, gerr.StatusCode())
	}
}

func (s *UsecaseSuite) TestRefreshToken() {
	s.db.On("GetRefreshToken", mock.Anything, "h:old").
		Return(&entity.RefreshToken{ID: 5, CustomerID: 7, ExpiresAt: now.Add(time.Hour)}, nil)
	s.db.On("GetCustomerByID", mock.Anything, int64(7)).Return(&entity.Customer{ID: 7, Email: "jane@example.com"}, nil)
	s.db.On("RotateRefreshToken", mock.Anything, int64(5), mock.MatchedBy(func(rt entity.RefreshToken) bool {
		return rt.Token == "h:refresh-1" && rt.CustomerID == 7
	})).Return(nil)

	out, err := s.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old"})
	s.Require().NoError(err)
	s.Equal("refresh-1", out.RefreshToken)
}

func (s *UsecaseSuite) TestRefreshToken_Expired() {
	s.db.On("GetRefreshToken", mock.Anything, "h:old").
		Return(&entity.RefreshToken{ID: 5, CustomerID: 7, ExpiresAt: now.Add(-time.Second)}, nil)

	_, err := s.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old"})
	s.True(reason.InvalidSession.Is(err))
}

func (s *UsecaseSuite) TestRefreshToken_AlreadyRotated() {
	s.db.On("GetRefreshToken", mock.Anything, "h:old").
		Return(&entity.RefreshToken{ID: 5, CustomerID: 7, ExpiresAt: now.Add(time.Hour)}, nil)
	s.db.On("GetCustomerByID", mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)
	s.db.On("RotateRefreshToken", mock.Anything, int64(5), mock.Anything).Return(goerror.ErrNotFound)

	_, err := s.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old"})
	s.True(reason.InvalidSession.Is(err))
}

func (s *UsecaseSuite) TestLoginFacebook_NewCustomer() {
	s.social.On("Profile", mock.Anything, "fb-token").
		Return(&entity.SocialProfile{Provider: "facebook", ID: "1029", Name: "Jane Doe", Email: "Jane@Example.com"}, nil)
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(nil, goerror.ErrNotFound)
	s.db.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c entity.Customer) bool {
		return c.Password == "" && c.Social.GetString("facebook") == "1029"
	})).Return(nil)
	s.mq.On("PublishCustomerRegistered", mock.Anything, mock.MatchedBy(func(e CustomerRegisteredEvent) bool {
		return e.Provider == "facebook"
	})).Return(nil)
	s.db.On("CreateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	out, err := s.uc.LoginFacebook(context.Background(), LoginFacebookInput{AccessToken: "fb-token"})
	s.Require().NoError(err)
	s.Equal("jane@example.com", out.Customer.Email)
}

func (s *UsecaseSuite) TestLoginFacebook_ExistingCustomerLinked() {
	s.social.On("Profile", mock.Anything, "fb-token").
		Return(&entity.SocialProfile{Provider: "facebook", ID: "1029", Name: "Jane", Email: "jane@example.com"}, nil)
	s.db.On("GetCustomerByEmail", mock.Anything, "jane@example.com").Return(&entity.Customer{ID: 7, Email: "jane@example.com"}, nil)
	s.db.On("UpdateSocial", mock.Anything, int64(7), "facebook", mock.Anything).Return(nil)
	s.db.On("CreateRefreshToken", mock.Anything, mock.Anything).Return(nil)

	out, err := s.uc.LoginFacebook(context.Background(), LoginFacebookInput{AccessToken: "fb-token"})
	s.Require().NoError(err)
	s.Equal(int64(7), out.Customer.ID)
}

func (s *UsecaseSuite) TestLoginFacebook_InvalidToken() {
	s.social.On("Profile", mock.Anything, "bad").Return(nil, errors.New("rejected"))

	_, err := s.uc.LoginFacebook(context.Background(), LoginFacebookInput{AccessToken: "bad"})
	s.True(reason.InvalidSocial.Is(err))

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(400, gerr.StatusCode())
	s.Equal("Invalid token", gerr.Msg())
}

func (s *UsecaseSuite) TestProfile_Unauthenticated() {
	_, err := s.uc.Profile(context.Background())
	s.True(reason.Unauthorized.Is(err))
}

func (s *UsecaseSuite) TestProfile_NotFound() {
	s.db.On("GetCustomerByID", mock.Anything, int64(7)).Return(nil, goerror.ErrNotFound)

	_, err := s.uc.Profile(authCtx(7))
	s.True(reason.CustomerNotFound.Is(err))
}

func (s *UsecaseSuite) TestProfileUpdate_EmailTaken() {
	s.db.On("UpdateProfile", mock.Anything, int64(7), mock.MatchedBy(func(p entity.Profile) bool {
		return p.Password == "h:NewSecret1!" && p.Email == "taken@example.com"
	})).Return(goerror.ErrConflict)

	_, err := s.uc.ProfileUpdate(authCtx(7), ProfileUpdateInput{Name: "Jane", Email: "taken@example.com", Password: "NewSecret1!"})
	s.True(reason.EmailExists.Is(err))
}

func (s *UsecaseSuite) TestProfileUpdateAddress_UnknownRegion() {
	s.db.On("UpdateAddress", mock.Anything, int64(7), mock.Anything).Return(entity.ErrShippingRegionNotFound)

	_, err := s.uc.ProfileUpdateAddress(authCtx(7), ProfileUpdateAddressInput{
		Address1: "1 Main St", City: "Springfield", Region: "IL", PostalCode: "62701", Country: "US", ShippingRegionID: 99,
	})

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(map[string]string{"shipping_region_id": "The shipping region does not exist."}, gerr.Fields())
}

func (s *UsecaseSuite) TestProfileUpdateAvatar() {
	ctx := authCtx(7)
	s.db.On("GetCustomerByID", mock.Anything, int64(7)).
		Return(&entity.Customer{ID: 7, AvatarURL: "https://cdn.example.com/avatars/avatars/7/old.png"}, nil)
	s.storage.On("Put", mock.Anything, "avatars", "avatars/7/0190f5d2-aaaa-7bbb-8ccc-000000000001.png",
		mock.MatchedBy(func(o storage.PutOptions) bool { return o.ContentType == "image/png" })).Return(nil)
	s.db.On("UpdateAvatar", mock.Anything, int64(7),
		"https://cdn.example.com/avatars/avatars/7/0190f5d2-aaaa-7bbb-8ccc-000000000001.png").Return(nil)
	s.storage.On("Delete", mock.Anything, "avatars", "avatars/7/old.png").Return(nil)

	c, err := s.uc.ProfileUpdateAvatar(ctx, ProfileUpdateAvatarInput{File: pngReader()})
	s.Require().NoError(err)
	s.Contains(c.AvatarURL, "0190f5d2")
}

func (s *UsecaseSuite) TestProfileUpdateAvatar_Unsupported() {
	s.db.On("GetCustomerByID", mock.Anything, int64(7)).Return(&entity.Customer{ID: 7}, nil)

	_, err := s.uc.ProfileUpdateAvatar(authCtx(7), ProfileUpdateAvatarInput{File: bytesReader("plain text, not an image")})

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(goerror.CodeInvalidInput, gerr.Code())
	s.Contains(gerr.Fields(), "avatar")
}

func TestProfileUpdateCreditCard(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		card    string
		setup   func(db *mockRepoDB)
		check   func(t *testing.T, err error)
		wantErr bool
	}{
		{
			name:    "unauthenticated",
			ctx:     context.Background(),
			card:    "4532015112830366",
			wantErr: true,
			check:   func(t *testing.T, err error) { assert.True(t, reason.Unauthorized.Is(err)) },
		},
		{
			name:    "missing",
			ctx:     authCtx(7),
			card:    "  ",
			wantErr: true,
			check: func(t *testing.T, err error) {
				var gerr *goerror.Error
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, "COM_02", gerr.Reason())
				assert.Equal(t, 422, gerr.StatusCode())
				assert.Contains(t, gerr.Fields(), "credit_card")
			},
		},
		{
			name:    "repeated digits",
			ctx:     authCtx(7),
			card:    "1111111111111111",
			wantErr: true,
			check: func(t *testing.T, err error) {
				var gerr *goerror.Error
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, "USR_08", gerr.Reason())
				assert.Equal(t, 422, gerr.StatusCode())
			},
		},
		{
			name:    "surrounding whitespace",
			ctx:     authCtx(7),
			card:    " 4532015112830366\n",
			wantErr: true,
			check: func(t *testing.T, err error) {
				var gerr *goerror.Error
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, "USR_08", gerr.Reason())
				assert.Contains(t, gerr.Fields(), "credit_card")
			},
		},
		{
			name:    "trailing space after groups",
			ctx:     authCtx(7),
			card:    "4532-0151-1283-0366 ",
			wantErr: true,
			check:   func(t *testing.T, err error) { assert.True(t, reason.InvalidCreditCard.Is(err)) },
		},
		{
			name:    "bad grouping",
			ctx:     authCtx(7),
			card:    "4532-0151-1283-03366",
			wantErr: true,
			check:   func(t *testing.T, err error) { assert.True(t, reason.InvalidCreditCard.Is(err)) },
		},
		{
			name: "customer gone",
			ctx:  authCtx(7),
			card: "4532-0151-1283-0366",
			setup: func(db *mockRepoDB) {
				db.On("UpdateCreditCard", mock.Anything, int64(7), "4532-0151-1283-0366").Return(goerror.ErrNotFound)
			},
			wantErr: true,
			check:   func(t *testing.T, err error) { assert.True(t, reason.CustomerNotFound.Is(err)) },
		},
		{
			name: "stored",
			ctx:  authCtx(7),
			card: "4532015112830366",
			setup: func(db *mockRepoDB) {
				db.On("UpdateCreditCard", mock.Anything, int64(7), "4532015112830366").Return(nil)
				db.On("GetCustomerByID", mock.Anything, int64(7)).Return(&entity.Customer{ID: 7, CreditCard: "4532015112830366"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(mockRepoDB)
			if tt.setup != nil {
				tt.setup(db)
			}
			uc := New(Dependency{RepoDB: db, Validator: v, Instrument: instrument.NewNoop()})

			c, err := uc.ProfileUpdateCreditCard(tt.ctx, ProfileUpdateCreditCardInput{CreditCard: tt.card})
			if tt.wantErr {
				require.Error(t, err)
				tt.check(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "4532015112830366", c.CreditCard)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestProfileUpdateCreditCard_FreshErrors(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)
	uc := New(Dependency{Validator: v, Instrument: instrument.NewNoop()})

	err1 := func() error {
		_, err := uc.ProfileUpdateCreditCard(authCtx(1), ProfileUpdateCreditCardInput{CreditCard: "0000"})
		return err
	}()
	err2 := func() error {
		_, err := uc.ProfileUpdateCreditCard(authCtx(2), ProfileUpdateCreditCardInput{CreditCard: "1111"})
		return err
	}()

	require.Error(t, err1)
	require.Error(t, err2)
	assert.NotSame(t, err1, err2)
}

func TestFormatTTL(t *testing.T) {
	assert.Equal(t, "24h", formatTTL(24*time.Hour))
	assert.Equal(t, "1h30m0s", formatTTL(90*time.Minute))
}

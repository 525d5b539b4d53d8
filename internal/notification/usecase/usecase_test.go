package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/mail"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testConfig = `
app:
  name: Storefront
  web: https://shop.example.com
modules:
  notification:
    support_email: help@shop.example.com
`

type mockMail struct{ mock.Mock }

func (m *mockMail) Send(ctx context.Context, msg mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type UsecaseSuite struct {
	suite.Suite

	mail *mockMail
	uc   *Usecase
}

func (s *UsecaseSuite) SetupTest() {
	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	s.Require().NoError(err)
	v, err := validator.NewV10Validator()
	s.Require().NoError(err)

	s.mail = new(mockMail)
	s.uc = New(Dependency{
		RepoMail:   s.mail,
		Validator:  v,
		Config:     cfg,
		Clock:      clock.Fixed(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		Instrument: instrument.NewNoop(),
	})
}

func (s *UsecaseSuite) TearDownTest() {
	s.mail.AssertExpectations(s.T())
}

func TestUsecase(t *testing.T) {
	suite.Run(t, new(UsecaseSuite))
}

func (s *UsecaseSuite) TestSendWelcomeEmail() {
	var sent mail.Message
	s.mail.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Message)
	}).Return(nil)

	err := s.uc.SendWelcomeEmail(context.Background(), WelcomeEmailInput{
		CustomerID: 1, Email: "ann@example.com", Name: "Ann <b>", Provider: "facebook",
	})
	s.Require().NoError(err)

	s.Equal([]string{"ann@example.com"}, sent.To)
	s.Equal("Welcome to Storefront", sent.Subject)
	s.Contains(sent.HTMLBody, "Ann &lt;b&gt;")
	s.Contains(sent.HTMLBody, "You signed up with facebook")
	s.Contains(sent.HTMLBody, "help@shop.example.com")
	s.Contains(sent.HTMLBody, "2026 Storefront")
}

func (s *UsecaseSuite) TestSendWelcomeEmail_InvalidDropped() {
	err := s.uc.SendWelcomeEmail(context.Background(), WelcomeEmailInput{CustomerID: 1, Email: "nope", Name: "Ann"})
	s.NoError(err)
	s.mail.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *UsecaseSuite) TestSendWelcomeEmail_MailFailureReturned() {
	s.mail.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := s.uc.SendWelcomeEmail(context.Background(), WelcomeEmailInput{CustomerID: 1, Email: "ann@example.com", Name: "Ann"})
	s.EqualError(err, "smtp down")
}

func (s *UsecaseSuite) TestSendOrderConfirmation() {
	var sent mail.Message
	s.mail.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Message)
	}).Return(nil)

	err := s.uc.SendOrderConfirmation(context.Background(), OrderConfirmationInput{
		OrderID: 901, CustomerID: 42, Email: "ann@example.com", Name: "Ann", TotalAmount: "69.83", ItemQuantity: 3,
	})
	s.Require().NoError(err)

	s.Equal("Order #901 received", sent.Subject)
	s.Contains(sent.HTMLBody, "#901")
	s.Contains(sent.HTMLBody, "69.83")
	s.Contains(sent.HTMLBody, "3 item(s)")
	s.Contains(sent.HTMLBody, "https://shop.example.com/orders/901")
}

func (s *UsecaseSuite) TestSendOrderConfirmation_MissingEmailDropped() {
	err := s.uc.SendOrderConfirmation(context.Background(), OrderConfirmationInput{OrderID: 1, CustomerID: 1, Name: "Ann", TotalAmount: "1.00"})
	s.NoError(err)
	s.mail.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

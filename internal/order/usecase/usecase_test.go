package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

const (
	cartID     = "0b6f7c43-8f7a-4b8e-9d3c-2f1a5e6d7c8b"
	testConfig = `
modules:
  order:
    idempotency_ttl_hours: 24
`
)

type UsecaseSuite struct {
	suite.Suite

	db    *mockRepoDB
	mq    *mockRepoMessaging
	idemp *fakeIdempotency
	uc    *Usecase
}

func (s *UsecaseSuite) SetupTest() {
	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	s.Require().NoError(err)
	v, err := validator.NewV10Validator()
	s.Require().NoError(err)

	s.db = new(mockRepoDB)
	s.mq = new(mockRepoMessaging)
	s.idemp = &fakeIdempotency{done: map[string]bool{}}
	s.uc = New(Dependency{
		RepoDB:        s.db,
		RepoMessaging: s.mq,
		Idempotency:   s.idemp,
		Validator:     v,
		Config:        cfg,
		UID:           &seqID{n: 900},
		UUID:          staticString(cartID),
		Clock:         clock.Fixed(now),
		Instrument:    instrument.NewNoop(),
	})
}

func (s *UsecaseSuite) TearDownTest() {
	s.db.AssertExpectations(s.T())
	s.mq.AssertExpectations(s.T())
}

func TestUsecase(t *testing.T) {
	suite.Run(t, new(UsecaseSuite))
}

func authCtx(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{CustomerID: id})
}

func (s *UsecaseSuite) cartItems() []entity.CartItem {
	return []entity.CartItem{
		{ItemID: 1, CartID: cartID, ProductID: 1, Name: "Arc", Attributes: "LG, Red", Price: 1499, Quantity: 2},
		{ItemID: 2, CartID: cartID, ProductID: 2, Name: "Chartres", Attributes: "", Price: 1595, Quantity: 1},
	}
}

func (s *UsecaseSuite) TestGenerateCartID() {
	s.Equal(cartID, s.uc.GenerateCartID(context.Background()))
}

func (s *UsecaseSuite) TestAddCartItem() {
	s.db.On("AddCartItem", mock.Anything, entity.CartItem{
		ItemID: 901, CartID: cartID, ProductID: 1, Attributes: "LG, Red", Quantity: 2, AddedOn: now,
	}).Return(nil)
	s.db.On("ListCartItems", mock.Anything, cartID).Return(s.cartItems(), nil)

	c, err := s.uc.AddCartItem(context.Background(), AddCartItemInput{
		CartID: cartID, ProductID: 1, Attributes: " LG, Red ", Quantity: 2,
	})
	s.Require().NoError(err)
	s.Equal(valueobject.Money(1499*2+1595), c.Total())
}

func (s *UsecaseSuite) TestAddCartItem_ZeroQuantity() {
	_, err := s.uc.AddCartItem(context.Background(), AddCartItemInput{CartID: cartID, ProductID: 1, Quantity: 0})

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(goerror.CodeInvalidInput, gerr.Code())
}

func (s *UsecaseSuite) TestAddCartItem_UnknownProduct() {
	s.db.On("AddCartItem", mock.Anything, mock.Anything).Return(entity.ErrProductNotFound)

	_, err := s.uc.AddCartItem(context.Background(), AddCartItemInput{CartID: cartID, ProductID: 77, Quantity: 1})
	s.True(reason.ProductNotFound.Is(err))
}

func (s *UsecaseSuite) TestGetCart_InvalidID() {
	_, err := s.uc.GetCart(context.Background(), "not-a-uuid")

	var gerr *goerror.Error
	s.Require().ErrorAs(err, &gerr)
	s.Equal(goerror.TypeValidation, gerr.Type())
}

func (s *UsecaseSuite) TestCreateOrder() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return(s.cartItems(), nil)
	s.db.On("GetShipping", mock.Anything, int32(2)).Return(&entity.Shipping{ID: 2, Cost: 2000}, nil)
	s.db.On("GetTax", mock.Anything, int32(1)).Return(&entity.Tax{ID: 1, Percentage: 8.5}, nil)
	s.db.On("GetCustomer", mock.Anything, int64(42)).Return(&entity.Customer{ID: 42, Name: "Ann", Email: "ann@example.com"}, nil)

	// subtotal 45.93, shipping 20.00, tax 8.5% of 45.93 = 3.90
	wantTotal := valueobject.Money(4593 + 2000 + 390)
	s.db.On("CreateOrder", mock.Anything,
		entity.Order{ID: 901, TotalAmount: wantTotal, CreatedOn: now, CustomerID: 42, ShippingID: 2, TaxID: 1},
		[]entity.OrderDetail{
			{ItemID: 902, OrderID: 901, ProductID: 1, Attributes: "LG, Red", ProductName: "Arc", Quantity: 2, UnitCost: 1499},
			{ItemID: 903, OrderID: 901, ProductID: 2, ProductName: "Chartres", Quantity: 1, UnitCost: 1595},
		},
		s.cartItems(),
	).Return(nil)
	s.mq.On("PublishOrderCreated", mock.Anything, OrderCreatedEvent{
		OrderID: 901, CustomerID: 42, Email: "ann@example.com", Name: "Ann", TotalAmount: "69.83", ItemQuantity: 3,
	}).Return(nil)

	id, err := s.uc.CreateOrder(authCtx(42), CreateOrderInput{CartID: cartID, ShippingID: 2, TaxID: 1})
	s.Require().NoError(err)
	s.Equal(int64(901), id)
}

func (s *UsecaseSuite) TestCreateOrder_EmptyCart() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return([]entity.CartItem{}, nil)

	_, err := s.uc.CreateOrder(authCtx(42), CreateOrderInput{CartID: cartID, ShippingID: 2, TaxID: 1})
	s.True(reason.CartEmpty.Is(err))
}

func (s *UsecaseSuite) TestCreateOrder_UnknownShipping() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return(s.cartItems(), nil)
	s.db.On("GetShipping", mock.Anything, int32(9)).Return(nil, goerror.ErrNotFound)

	_, err := s.uc.CreateOrder(authCtx(42), CreateOrderInput{CartID: cartID, ShippingID: 9, TaxID: 1})
	s.True(reason.ShippingNotFound.Is(err))
}

func (s *UsecaseSuite) TestCreateOrder_UnknownTax() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return(s.cartItems(), nil)
	s.db.On("GetShipping", mock.Anything, int32(2)).Return(&entity.Shipping{ID: 2}, nil)
	s.db.On("GetTax", mock.Anything, int32(9)).Return(nil, goerror.ErrNotFound)

	_, err := s.uc.CreateOrder(authCtx(42), CreateOrderInput{CartID: cartID, ShippingID: 2, TaxID: 9})
	s.True(reason.TaxNotFound.Is(err))
}

func (s *UsecaseSuite) TestCreateOrder_DuplicateKey() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return(s.cartItems(), nil).Once()
	s.db.On("GetShipping", mock.Anything, int32(2)).Return(&entity.Shipping{ID: 2}, nil).Once()
	s.db.On("GetTax", mock.Anything, int32(1)).Return(&entity.Tax{ID: 1}, nil).Once()
	s.db.On("GetCustomer", mock.Anything, int64(42)).Return(&entity.Customer{ID: 42}, nil).Once()
	s.db.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, s.cartItems()).Return(nil).Once()
	s.mq.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	in := CreateOrderInput{IdempotencyKey: "k-1", CartID: cartID, ShippingID: 2, TaxID: 1}
	_, err := s.uc.CreateOrder(authCtx(42), in)
	s.Require().NoError(err)

	_, err = s.uc.CreateOrder(authCtx(42), in)
	s.True(reason.OrderDuplicate.Is(err))
}

func (s *UsecaseSuite) TestCreateOrder_FailedRunCanRetry() {
	s.db.On("ListCartItems", mock.Anything, cartID).Return([]entity.CartItem{}, nil).Twice()

	in := CreateOrderInput{IdempotencyKey: "k-2", CartID: cartID, ShippingID: 2, TaxID: 1}
	_, err := s.uc.CreateOrder(authCtx(42), in)
	s.True(reason.CartEmpty.Is(err))

	_, err = s.uc.CreateOrder(authCtx(42), in)
	s.True(reason.CartEmpty.Is(err))
}

func (s *UsecaseSuite) TestCreateOrder_Unauthenticated() {
	_, err := s.uc.CreateOrder(context.Background(), CreateOrderInput{CartID: cartID, ShippingID: 2, TaxID: 1})
	s.True(reason.Unauthorized.Is(err))
}

func (s *UsecaseSuite) TestGetOrder_OtherCustomer() {
	s.db.On("GetOrder", mock.Anything, int64(5)).Return(&entity.Order{ID: 5, CustomerID: 7}, nil)

	_, err := s.uc.GetOrder(authCtx(42), 5)
	s.True(reason.OrderNotFound.Is(err))
}

func (s *UsecaseSuite) TestListOrderDetails() {
	s.db.On("GetOrder", mock.Anything, int64(5)).Return(&entity.Order{ID: 5, CustomerID: 42}, nil)
	s.db.On("ListOrderDetails", mock.Anything, int64(5)).
		Return([]entity.OrderDetail{{ItemID: 1, OrderID: 5, Quantity: 2, UnitCost: 1000}}, nil)

	items, err := s.uc.ListOrderDetails(authCtx(42), 5)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(valueobject.Money(2000), items[0].Subtotal())
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal valueobject.Money
		shipping valueobject.Money
		tax      float64
		want     valueobject.Money
	}{
		{name: "NoTax", subtotal: 1000, shipping: 500, tax: 0, want: 1500},
		{name: "RoundsHalfUp", subtotal: 1, shipping: 0, tax: 50, want: 2},
		{name: "SalesTax", subtotal: 4593, shipping: 2000, tax: 8.5, want: 6983},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderTotal(tt.subtotal, tt.shipping, tt.tax))
		})
	}
}

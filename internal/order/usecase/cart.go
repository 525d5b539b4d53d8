package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

type cartIDInput struct {
	CartID string `validate:"required,uuid"`
}

func (s *Usecase) GenerateCartID(ctx context.Context) string {
	_, span := s.startSpan(ctx, "GenerateCartID")
	defer span.End()

	return s.uuid.Generate()
}

type AddCartItemInput struct {
	CartID     string `validate:"required,uuid"`
	ProductID  int32  `validate:"gt=0"`
	Attributes string `validate:"max=1000"`
	Quantity   int32  `validate:"gt=0,lte=1000"`
}

// AddCartItem adds quantity to the line with the same product and attributes,
// creating it when missing.
func (s *Usecase) AddCartItem(ctx context.Context, in AddCartItemInput) (*entity.Cart, error) {
	ctx, span := s.startSpan(ctx, "AddCartItem")
	defer span.End()

	in.CartID = strings.TrimSpace(in.CartID)
	in.Attributes = strings.TrimSpace(in.Attributes)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	err := s.repoDB.AddCartItem(ctx, entity.CartItem{
		ItemID:     s.uid.Generate(),
		CartID:     in.CartID,
		ProductID:  in.ProductID,
		Attributes: in.Attributes,
		Quantity:   in.Quantity,
		AddedOn:    s.clock.Now(),
	})
	if errors.Is(err, entity.ErrProductNotFound) {
		return nil, reason.ProductNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add cart item", "cart_id", in.CartID, "product_id", in.ProductID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.cart(ctx, in.CartID)
}

func (s *Usecase) GetCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	ctx, span := s.startSpan(ctx, "GetCart")
	defer span.End()

	cartID = strings.TrimSpace(cartID)
	if err := s.validator.Validate(cartIDInput{CartID: cartID}); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return s.cart(ctx, cartID)
}

func (s *Usecase) EmptyCart(ctx context.Context, cartID string) error {
	ctx, span := s.startSpan(ctx, "EmptyCart")
	defer span.End()

	cartID = strings.TrimSpace(cartID)
	if err := s.validator.Validate(cartIDInput{CartID: cartID}); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteCart(ctx, cartID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete cart", "cart_id", cartID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) cart(ctx context.Context, cartID string) (*entity.Cart, error) {
	items, err := s.repoDB.ListCartItems(ctx, cartID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list cart items", "cart_id", cartID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.Cart{ID: cartID, Items: items}, nil
}

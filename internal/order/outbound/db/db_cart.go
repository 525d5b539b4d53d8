package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

func (s *DB) ListCartItems(ctx context.Context, cartID string) (_ []entity.CartItem, err error) {
	ctx, span := s.startSpan(ctx, "ListCartItems")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.CartItem{
			ItemID:     row.ItemID,
			CartID:     row.CartID,
			ProductID:  row.ProductID,
			Name:       row.Name,
			Attributes: row.Attributes,
			Price:      valueobject.Money(row.PriceCents),
			Quantity:   row.Quantity,
			AddedOn:    row.AddedOn,
		})
	}

	return items, nil
}

// AddCartItem merges into an existing line with the same product and attributes.
func (s *DB) AddCartItem(ctx context.Context, item entity.CartItem) (err error) {
	ctx, span := s.startSpan(ctx, "AddCartItem")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.AddCartItem(ctx, sqlc.AddCartItemParams{
		ItemID:     item.ItemID,
		CartID:     item.CartID,
		ProductID:  item.ProductID,
		Attributes: item.Attributes,
		Quantity:   item.Quantity,
		AddedOn:    item.AddedOn,
	}))
	return err
}

func (s *DB) DeleteCart(ctx context.Context, cartID string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCart")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.DeleteCart(ctx, cartID))
	return err
}

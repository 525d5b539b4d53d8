package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

func toOrder(row sqlc.GetOrderRow) entity.Order {
	return entity.Order{
		ID:           row.OrderID,
		TotalAmount:  valueobject.Money(row.TotalCents),
		CreatedOn:    row.CreatedOn,
		ShippedOn:    row.ShippedOn,
		Status:       entity.OrderStatus(row.Status),
		Comments:     row.Comments,
		CustomerID:   row.CustomerID,
		CustomerName: row.CustomerName,
		ShippingID:   row.ShippingID,
		TaxID:        row.TaxID,
	}
}

func (s *DB) GetCustomer(ctx context.Context, id int64) (_ *entity.Customer, err error) {
	ctx, span := s.startSpan(ctx, "GetCustomer")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetOrderCustomer(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &entity.Customer{ID: row.CustomerID, Name: row.Name, Email: row.Email}, nil
}

// CreateOrder stores the order with its details and takes the ordered lines
// out of their cart in one transaction. A line whose quantity grew after it
// was read keeps the difference, and lines added meanwhile stay untouched.
func (s *DB) CreateOrder(ctx context.Context, order entity.Order, details []entity.OrderDetail, ordered []entity.CartItem) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOrder")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	wtx := s.query.WithTx(tx)

	if err = wtx.CreateOrder(ctx, sqlc.CreateOrderParams{
		OrderID:    order.ID,
		TotalCents: int64(order.TotalAmount),
		CreatedOn:  order.CreatedOn,
		Status:     int16(order.Status),
		CustomerID: order.CustomerID,
		ShippingID: order.ShippingID,
		TaxID:      order.TaxID,
	}); err != nil {
		return s.mapError(err)
	}

	for _, d := range details {
		if err = wtx.CreateOrderDetail(ctx, sqlc.CreateOrderDetailParams{
			ItemID:        d.ItemID,
			OrderID:       d.OrderID,
			ProductID:     d.ProductID,
			Attributes:    d.Attributes,
			ProductName:   d.ProductName,
			Quantity:      d.Quantity,
			UnitCostCents: int64(d.UnitCost),
		}); err != nil {
			return s.mapError(err)
		}
	}

	for _, it := range ordered {
		var removed int64
		removed, err = wtx.DeleteOrderedCartItem(ctx, sqlc.DeleteOrderedCartItemParams{
			CartID:   it.CartID,
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		})
		if err != nil {
			return s.mapError(err)
		}
		if removed > 0 {
			continue
		}

		if _, err = wtx.DeductOrderedCartItem(ctx, sqlc.DeductOrderedCartItemParams{
			Quantity: it.Quantity,
			CartID:   it.CartID,
			ItemID:   it.ItemID,
		}); err != nil {
			return s.mapError(err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) ListOrders(ctx context.Context, customerID int64) (_ []entity.Order, err error) {
	ctx, span := s.startSpan(ctx, "ListOrders")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListOrders(ctx, customerID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		items = append(items, toOrder(sqlc.GetOrderRow(row)))
	}

	return items, nil
}

func (s *DB) GetOrder(ctx context.Context, id int64) (_ *entity.Order, err error) {
	ctx, span := s.startSpan(ctx, "GetOrder")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetOrder(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	o := toOrder(row)
	return &o, nil
}

func (s *DB) ListOrderDetails(ctx context.Context, orderID int64) (_ []entity.OrderDetail, err error) {
	ctx, span := s.startSpan(ctx, "ListOrderDetails")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListOrderDetails(ctx, orderID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.OrderDetail, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.OrderDetail{
			ItemID:      row.ItemID,
			OrderID:     row.OrderID,
			ProductID:   row.ProductID,
			Attributes:  row.Attributes,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitCost:    valueobject.Money(row.UnitCostCents),
		})
	}

	return items, nil
}

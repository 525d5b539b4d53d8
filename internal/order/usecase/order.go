package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
)

func (s *Usecase) ListOrders(ctx context.Context) ([]entity.Order, error) {
	ctx, span := s.startSpan(ctx, "ListOrders")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListOrders(ctx, clm.CustomerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list orders", "customer_id", clm.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := s.startSpan(ctx, "GetOrder")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	return s.ownOrder(ctx, clm.CustomerID, id)
}

func (s *Usecase) ListOrderDetails(ctx context.Context, id int64) ([]entity.OrderDetail, error) {
	ctx, span := s.startSpan(ctx, "ListOrderDetails")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownOrder(ctx, clm.CustomerID, id); err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListOrderDetails(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list order details", "order_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
)

func (s *Usecase) ListShippingRegions(ctx context.Context) ([]entity.ShippingRegion, error) {
	ctx, span := s.startSpan(ctx, "ListShippingRegions")
	defer span.End()

	items, err := s.repoDB.ListShippingRegions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list shipping regions", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) ListShippings(ctx context.Context, regionID int32) ([]entity.Shipping, error) {
	ctx, span := s.startSpan(ctx, "ListShippings")
	defer span.End()

	items, err := s.repoDB.ListShippings(ctx, regionID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list shippings", "shipping_region_id", regionID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) ListTaxes(ctx context.Context) ([]entity.Tax, error) {
	ctx, span := s.startSpan(ctx, "ListTaxes")
	defer span.End()

	items, err := s.repoDB.ListTaxes(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list taxes", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"golang.org/x/sync/errgroup"
)

func (s *Usecase) GetProductDetails(ctx context.Context, id int32) (*entity.ProductDetails, error) {
	ctx, span := s.startSpan(ctx, "GetProductDetails")
	defer span.End()

	p, err := s.product(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &entity.ProductDetails{Product: *p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.repoDB.ListProductLocations(gctx, id)
		out.Locations = items
		return err
	})
	g.Go(func() error {
		items, err := s.repoDB.ListProductAttributes(gctx, id)
		out.Attributes = items
		return err
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to repo get product details", "product_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

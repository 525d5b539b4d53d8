package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
)

func (s *DB) ListReviews(ctx context.Context, productID int32) (_ []entity.Review, err error) {
	ctx, span := s.startSpan(ctx, "ListReviews")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListReviews(ctx, productID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Review, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.Review{
			ID:           row.ReviewID,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			ProductID:    row.ProductID,
			Review:       row.Review,
			Rating:       row.Rating,
			CreatedOn:    row.CreatedOn,
		})
	}

	return items, nil
}

func (s *DB) CreateReview(ctx context.Context, r entity.Review) (err error) {
	ctx, span := s.startSpan(ctx, "CreateReview")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.CreateReview(ctx, sqlc.CreateReviewParams{
		ReviewID:   r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Review:     r.Review,
		Rating:     r.Rating,
		CreatedOn:  r.CreatedOn,
	}))
	return err
}

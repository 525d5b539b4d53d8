package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

func (s *Usecase) ListProductReviews(ctx context.Context, productID int32) ([]entity.Review, error) {
	ctx, span := s.startSpan(ctx, "ListProductReviews")
	defer span.End()

	if _, err := s.product(ctx, productID); err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListReviews(ctx, productID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list reviews", "product_id", productID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

type CreateProductReviewInput struct {
	ProductID int32
	Review    string
	Rating    int16 `validate:"gte=1,lte=5"`
}

func (s *Usecase) CreateProductReview(ctx context.Context, in CreateProductReviewInput) (*entity.Review, error) {
	ctx, span := s.startSpan(ctx, "CreateProductReview")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, reason.Unauthorized.New()
	}

	in.Review = strings.TrimSpace(in.Review)
	if in.Review == "" || in.Rating == 0 {
		return nil, reason.ReviewRequired.New()
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.product(ctx, in.ProductID); err != nil {
		return nil, err
	}

	r := entity.Review{
		ID:         s.uid.Generate(),
		CustomerID: clm.CustomerID,
		ProductID:  in.ProductID,
		Review:     in.Review,
		Rating:     in.Rating,
		CreatedOn:  s.clock.Now(),
	}
	if err := s.repoDB.CreateReview(ctx, r); err != nil {
		slog.ErrorContext(ctx, "failed to repo create review", "product_id", in.ProductID, "customer_id", clm.CustomerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &r, nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

func (s *Usecase) ListAttributes(ctx context.Context) ([]entity.Attribute, error) {
	ctx, span := s.startSpan(ctx, "ListAttributes")
	defer span.End()

	items, err := s.repoDB.ListAttributes(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list attributes", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) GetAttribute(ctx context.Context, id int32) (*entity.Attribute, error) {
	ctx, span := s.startSpan(ctx, "GetAttribute")
	defer span.End()

	a, err := s.repoDB.GetAttribute(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.AttributeNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get attribute", "attribute_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return a, nil
}

func (s *Usecase) ListAttributeValues(ctx context.Context, attributeID int32) ([]entity.AttributeValue, error) {
	ctx, span := s.startSpan(ctx, "ListAttributeValues")
	defer span.End()

	items, err := s.repoDB.ListAttributeValues(ctx, attributeID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list attribute values", "attribute_id", attributeID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if len(items) == 0 {
		return nil, reason.AttributeNoValue.New()
	}

	return items, nil
}

func (s *Usecase) ListProductAttributes(ctx context.Context, productID int32) ([]entity.ProductAttributeValue, error) {
	ctx, span := s.startSpan(ctx, "ListProductAttributes")
	defer span.End()

	items, err := s.repoDB.ListProductAttributes(ctx, productID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list product attributes", "product_id", productID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if len(items) == 0 {
		return nil, reason.ProductNoAttribute.New()
	}

	return items, nil
}

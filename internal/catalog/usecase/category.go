package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

func (s *Usecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	ctx, span := s.startSpan(ctx, "ListCategories")
	defer span.End()

	items, err := s.repoCache.GetCategories(ctx)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "failed to cache get categories", "error", err)
	}

	items, err = s.repoDB.ListCategories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list categories", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoCache.SetCategories(ctx, items); err != nil {
		slog.WarnContext(ctx, "failed to cache set categories", "error", err)
	}

	return items, nil
}

func (s *Usecase) GetCategory(ctx context.Context, id int32) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "GetCategory")
	defer span.End()

	c, err := s.repoDB.GetCategory(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.CategoryNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category", "category_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return c, nil
}

func (s *Usecase) ListDepartmentCategories(ctx context.Context, departmentID int32) ([]entity.Category, error) {
	ctx, span := s.startSpan(ctx, "ListDepartmentCategories")
	defer span.End()

	if _, err := s.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListCategoriesByDepartment(ctx, departmentID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list categories by department", "department_id", departmentID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) ListProductCategories(ctx context.Context, productID int32) ([]entity.Category, error) {
	ctx, span := s.startSpan(ctx, "ListProductCategories")
	defer span.End()

	if _, err := s.product(ctx, productID); err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListCategoriesByProduct(ctx, productID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list categories by product", "product_id", productID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

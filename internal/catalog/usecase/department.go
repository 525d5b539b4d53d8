package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

// ListDepartments serves from cache when possible; cache failures fall through to the database.
func (s *Usecase) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	ctx, span := s.startSpan(ctx, "ListDepartments")
	defer span.End()

	items, err := s.repoCache.GetDepartments(ctx)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "failed to cache get departments", "error", err)
	}

	items, err = s.repoDB.ListDepartments(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list departments", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoCache.SetDepartments(ctx, items); err != nil {
		slog.WarnContext(ctx, "failed to cache set departments", "error", err)
	}

	return items, nil
}

func (s *Usecase) GetDepartment(ctx context.Context, id int32) (*entity.Department, error) {
	ctx, span := s.startSpan(ctx, "GetDepartment")
	defer span.End()

	d, err := s.repoDB.GetDepartment(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.DepartmentNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get department", "department_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return d, nil
}

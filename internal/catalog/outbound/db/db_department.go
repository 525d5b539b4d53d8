package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
)

func toDepartment(row sqlc.GetDepartmentRow) entity.Department {
	return entity.Department{
		ID:          row.DepartmentID,
		Name:        row.Name,
		Description: row.Description,
	}
}

func toCategory(row sqlc.GetCategoryRow) entity.Category {
	return entity.Category{
		ID:           row.CategoryID,
		DepartmentID: row.DepartmentID,
		Name:         row.Name,
		Description:  row.Description,
	}
}

func (s *DB) ListDepartments(ctx context.Context) (_ []entity.Department, err error) {
	ctx, span := s.startSpan(ctx, "ListDepartments")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListDepartments(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Department, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDepartment(sqlc.GetDepartmentRow(row)))
	}

	return items, nil
}

func (s *DB) GetDepartment(ctx context.Context, id int32) (_ *entity.Department, err error) {
	ctx, span := s.startSpan(ctx, "GetDepartment")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetDepartment(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	d := toDepartment(row)
	return &d, nil
}

func (s *DB) ListCategories(ctx context.Context) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "ListCategories")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListCategories(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		items = append(items, toCategory(sqlc.GetCategoryRow(row)))
	}

	return items, nil
}

func (s *DB) GetCategory(ctx context.Context, id int32) (_ *entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategory")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetCategory(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	c := toCategory(row)
	return &c, nil
}

func (s *DB) ListCategoriesByDepartment(ctx context.Context, departmentID int32) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "ListCategoriesByDepartment")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListCategoriesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		items = append(items, toCategory(sqlc.GetCategoryRow(row)))
	}

	return items, nil
}

func (s *DB) ListCategoriesByProduct(ctx context.Context, productID int32) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "ListCategoriesByProduct")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListCategoriesByProduct(ctx, productID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		items = append(items, toCategory(sqlc.GetCategoryRow(row)))
	}

	return items, nil
}

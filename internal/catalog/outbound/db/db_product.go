package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

// toProduct reads money as integer cents.
func toProduct(row sqlc.GetProductRow) entity.Product {
	return entity.Product{
		ID:              row.ProductID,
		Name:            row.Name,
		Description:     row.Description,
		Price:           valueobject.Money(row.PriceCents),
		DiscountedPrice: valueobject.Money(row.DiscountedPriceCents),
		Image:           row.Image,
		Image2:          row.Image2,
		Thumbnail:       row.Thumbnail,
		Display:         row.Display,
	}
}

// productParams maps a filter onto the listing query; zero values disable a condition.
func productParams(f entity.ProductFilter) sqlc.ListProductsParams {
	return sqlc.ListProductsParams{
		Search:       f.Search,
		CategoryID:   max(f.CategoryID, 0),
		DepartmentID: max(f.DepartmentID, 0),
		RowLimit:     f.Limit,
		RowOffset:    f.Offset,
	}
}

func (s *DB) ListProducts(ctx context.Context, f entity.ProductFilter) (_ []entity.Product, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListProducts")
	defer func() { s.endSpan(span, err) }()

	arg := productParams(f)

	count, err := s.query.CountProducts(ctx, sqlc.CountProductsParams{
		Search:       arg.Search,
		CategoryID:   arg.CategoryID,
		DepartmentID: arg.DepartmentID,
	})
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	if count == 0 {
		return []entity.Product{}, 0, nil
	}

	rows, err := s.query.ListProducts(ctx, arg)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	items := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		p := toProduct(sqlc.GetProductRow(row))
		if f.DescriptionLength > 0 {
			p.Description = truncate(p.Description, int(f.DescriptionLength))
		}
		items = append(items, p)
	}

	return items, count, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func (s *DB) GetProduct(ctx context.Context, id int32) (_ *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "GetProduct")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetProduct(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	p := toProduct(row)
	return &p, nil
}

func (s *DB) ListProductLocations(ctx context.Context, productID int32) (_ []entity.ProductLocation, err error) {
	ctx, span := s.startSpan(ctx, "ListProductLocations")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListProductLocations(ctx, productID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.ProductLocation, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.ProductLocation{
			CategoryID:     row.CategoryID,
			CategoryName:   row.CategoryName,
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
		})
	}

	return items, nil
}

func (s *DB) UpdateProductImage(ctx context.Context, productID int32, slot entity.ImageSlot, url string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	defer func() { s.endSpan(span, err) }()

	if !slot.Valid() {
		return fmt.Errorf("invalid image slot %q", slot)
	}

	rows, err := s.query.UpdateProductImage(ctx, sqlc.UpdateProductImageParams{
		Slot:      string(slot),
		Url:       url,
		ProductID: productID,
	})
	if err != nil {
		return s.mapError(err)
	}
	if rows == 0 {
		return goerror.ErrNotFound
	}
	return nil
}

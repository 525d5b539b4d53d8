package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

func toShipping(row sqlc.GetShippingRow) entity.Shipping {
	return entity.Shipping{
		ID:       row.ShippingID,
		Type:     row.ShippingType,
		Cost:     valueobject.Money(row.ShippingCostCents),
		RegionID: row.ShippingRegionID,
	}
}

func toTax(row sqlc.GetTaxRow) entity.Tax {
	return entity.Tax{
		ID:         row.TaxID,
		Type:       row.TaxType,
		Percentage: row.TaxPercentage,
	}
}

func (s *DB) ListShippingRegions(ctx context.Context) (_ []entity.ShippingRegion, err error) {
	ctx, span := s.startSpan(ctx, "ListShippingRegions")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListShippingRegions(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.ShippingRegion, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.ShippingRegion{ID: row.ShippingRegionID, Name: row.ShippingRegion})
	}

	return items, nil
}

func (s *DB) ListShippings(ctx context.Context, regionID int32) (_ []entity.Shipping, err error) {
	ctx, span := s.startSpan(ctx, "ListShippings")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListShippings(ctx, regionID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Shipping, 0, len(rows))
	for _, row := range rows {
		items = append(items, toShipping(sqlc.GetShippingRow(row)))
	}

	return items, nil
}

func (s *DB) GetShipping(ctx context.Context, id int32) (_ *entity.Shipping, err error) {
	ctx, span := s.startSpan(ctx, "GetShipping")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetShipping(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	sh := toShipping(row)
	return &sh, nil
}

func (s *DB) ListTaxes(ctx context.Context) (_ []entity.Tax, err error) {
	ctx, span := s.startSpan(ctx, "ListTaxes")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListTaxes(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Tax, 0, len(rows))
	for _, row := range rows {
		items = append(items, toTax(sqlc.GetTaxRow(row)))
	}

	return items, nil
}

func (s *DB) GetTax(ctx context.Context, id int32) (_ *entity.Tax, err error) {
	ctx, span := s.startSpan(ctx, "GetTax")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetTax(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	t := toTax(row)
	return &t, nil
}

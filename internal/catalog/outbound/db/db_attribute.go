package db

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
)

func (s *DB) ListAttributes(ctx context.Context) (_ []entity.Attribute, err error) {
	ctx, span := s.startSpan(ctx, "ListAttributes")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListAttributes(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.Attribute, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.Attribute{ID: row.AttributeID, Name: row.Name})
	}

	return items, nil
}

func (s *DB) GetAttribute(ctx context.Context, id int32) (_ *entity.Attribute, err error) {
	ctx, span := s.startSpan(ctx, "GetAttribute")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetAttribute(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &entity.Attribute{ID: row.AttributeID, Name: row.Name}, nil
}

func (s *DB) ListAttributeValues(ctx context.Context, attributeID int32) (_ []entity.AttributeValue, err error) {
	ctx, span := s.startSpan(ctx, "ListAttributeValues")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListAttributeValues(ctx, attributeID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.AttributeValue, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.AttributeValue{
			ID:          row.AttributeValueID,
			AttributeID: row.AttributeID,
			Value:       row.Value,
		})
	}

	return items, nil
}

func (s *DB) ListProductAttributes(ctx context.Context, productID int32) (_ []entity.ProductAttributeValue, err error) {
	ctx, span := s.startSpan(ctx, "ListProductAttributes")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListProductAttributes(ctx, productID)
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]entity.ProductAttributeValue, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.ProductAttributeValue{
			AttributeName:  row.AttributeName,
			AttributeValue: row.AttributeValue,
			ValueID:        row.AttributeValueID,
		})
	}

	return items, nil
}

package db

import (
	"testing"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/sqlc"
	"github.com/stretchr/testify/assert"
)

func TestProductParams(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   sqlc.ListProductsParams
	}{
		{name: "NoFilter", filter: entity.ProductFilter{Limit: 20}, want: sqlc.ListProductsParams{RowLimit: 20}},
		{
			name:   "SearchAndCategory",
			filter: entity.ProductFilter{Search: "blue", CategoryID: 3, Limit: 10, Offset: 30},
			want:   sqlc.ListProductsParams{Search: "blue", CategoryID: 3, RowLimit: 10, RowOffset: 30},
		},
		{
			name:   "DeepOffset",
			filter: entity.ProductFilter{DepartmentID: 2, Limit: 200, Offset: 3_999_999_800},
			want:   sqlc.ListProductsParams{DepartmentID: 2, RowLimit: 200, RowOffset: 3_999_999_800},
		},
		{
			name:   "NegativeIDsMatchEverything",
			filter: entity.ProductFilter{CategoryID: -1, DepartmentID: -4, Limit: 5},
			want:   sqlc.ListProductsParams{RowLimit: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productParams(tt.filter))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "Fren...", truncate("French", 4))
	assert.Equal(t, "été...", truncate("étésoleil", 3))
}

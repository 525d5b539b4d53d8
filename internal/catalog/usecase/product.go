package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

type PageInput struct {
	Page  int32 `validate:"gte=1"`
	Limit int32 `validate:"gte=1,lte=200"`
	// DescriptionLength truncates descriptions in the listing; 0 keeps them whole.
	DescriptionLength int32 `validate:"gte=0"`
}

// normalize applies defaults; an oversized limit is clamped like the page size cap.
func (p *PageInput) normalize() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

type ProductPage struct {
	Count int64
	Page  int32
	Limit int32
	Rows  []entity.Product
}

func (p ProductPage) HasNext() bool     { return int64(p.Page)*int64(p.Limit) < p.Count }
func (p ProductPage) HasPrevious() bool { return p.Page > 1 }

type ListProductsInput struct {
	PageInput
	Search string `validate:"max=100"`
}

type SearchProductsInput struct {
	PageInput
	QueryString string `validate:"required,max=100"`
}

func (s *Usecase) listProducts(ctx context.Context, in PageInput, f entity.ProductFilter) (*ProductPage, error) {
	f.Limit = in.Limit
	f.Offset = int64(in.Page-1) * int64(in.Limit)
	f.DescriptionLength = in.DescriptionLength

	rows, count, err := s.repoDB.ListProducts(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductPage{Count: count, Page: in.Page, Limit: in.Limit, Rows: rows}, nil
}

func (s *Usecase) ListProducts(ctx context.Context, in ListProductsInput) (*ProductPage, error) {
	ctx, span := s.startSpan(ctx, "ListProducts")
	defer span.End()

	in.normalize()
	in.Search = strings.TrimSpace(in.Search)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return s.listProducts(ctx, in.PageInput, entity.ProductFilter{Search: in.Search})
}

func (s *Usecase) SearchProducts(ctx context.Context, in SearchProductsInput) (*ProductPage, error) {
	ctx, span := s.startSpan(ctx, "SearchProducts")
	defer span.End()

	in.normalize()
	in.QueryString = strings.TrimSpace(in.QueryString)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return s.listProducts(ctx, in.PageInput, entity.ProductFilter{Search: in.QueryString})
}

func (s *Usecase) ListCategoryProducts(ctx context.Context, categoryID int32, in PageInput) (*ProductPage, error) {
	ctx, span := s.startSpan(ctx, "ListCategoryProducts")
	defer span.End()

	in.normalize()
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.listProducts(ctx, in, entity.ProductFilter{CategoryID: categoryID})
}

// ListDepartmentProducts lists products in any category of the department.
func (s *Usecase) ListDepartmentProducts(ctx context.Context, departmentID int32, in PageInput) (*ProductPage, error) {
	ctx, span := s.startSpan(ctx, "ListDepartmentProducts")
	defer span.End()

	in.normalize()
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	categories, err := s.repoDB.ListCategoriesByDepartment(ctx, departmentID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list categories by department", "department_id", departmentID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if len(categories) == 0 {
		return nil, reason.DepartmentNoCategory.New()
	}

	return s.listProducts(ctx, in, entity.ProductFilter{DepartmentID: departmentID})
}

func (s *Usecase) GetProduct(ctx context.Context, id int32) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetProduct")
	defer span.End()

	return s.product(ctx, id)
}

func (s *Usecase) ListProductLocations(ctx context.Context, productID int32) ([]entity.ProductLocation, error) {
	ctx, span := s.startSpan(ctx, "ListProductLocations")
	defer span.End()

	if _, err := s.product(ctx, productID); err != nil {
		return nil, err
	}

	items, err := s.repoDB.ListProductLocations(ctx, productID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list product locations", "product_id", productID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

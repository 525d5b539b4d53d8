package inbound

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/catalog/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

// Casbin object and action guarding product image uploads.
const (
	ObjectProduct = "catalog.product"
	ActionUpdate  = "update"
)

type uc interface {
	ListDepartments(ctx context.Context) ([]entity.Department, error)
	GetDepartment(ctx context.Context, id int32) (*entity.Department, error)

	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int32) (*entity.Category, error)
	ListDepartmentCategories(ctx context.Context, departmentID int32) ([]entity.Category, error)
	ListProductCategories(ctx context.Context, productID int32) ([]entity.Category, error)

	ListProducts(ctx context.Context, in usecase.ListProductsInput) (*usecase.ProductPage, error)
	SearchProducts(ctx context.Context, in usecase.SearchProductsInput) (*usecase.ProductPage, error)
	ListCategoryProducts(ctx context.Context, categoryID int32, in usecase.PageInput) (*usecase.ProductPage, error)
	ListDepartmentProducts(ctx context.Context, departmentID int32, in usecase.PageInput) (*usecase.ProductPage, error)
	GetProduct(ctx context.Context, id int32) (*entity.Product, error)
	GetProductDetails(ctx context.Context, id int32) (*entity.ProductDetails, error)
	ListProductLocations(ctx context.Context, productID int32) ([]entity.ProductLocation, error)
	UpdateProductImage(ctx context.Context, in usecase.UpdateProductImageInput) (*entity.Product, error)

	ListProductReviews(ctx context.Context, productID int32) ([]entity.Review, error)
	CreateProductReview(ctx context.Context, in usecase.CreateProductReviewInput) (*entity.Review, error)

	ListAttributes(ctx context.Context) ([]entity.Attribute, error)
	GetAttribute(ctx context.Context, id int32) (*entity.Attribute, error)
	ListAttributeValues(ctx context.Context, attributeID int32) ([]entity.AttributeValue, error)
	ListProductAttributes(ctx context.Context, productID int32) ([]entity.ProductAttributeValue, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/catalog/departments", end.ListDepartments)
	r.GET("/api/v1/catalog/departments/:id", end.GetDepartment)
	r.GET("/api/v1/catalog/departments/:id/categories", end.ListDepartmentCategories)
	r.GET("/api/v1/catalog/departments/:id/products", end.ListDepartmentProducts)

	r.GET("/api/v1/catalog/categories", end.ListCategories)
	r.GET("/api/v1/catalog/categories/:id", end.GetCategory)
	r.GET("/api/v1/catalog/categories/:id/products", end.ListCategoryProducts)

	r.GET("/api/v1/catalog/products", end.ListProducts)
	r.GET("/api/v1/catalog/products-search", end.SearchProducts)
	r.GET("/api/v1/catalog/products/:id", end.GetProduct)
	r.GET("/api/v1/catalog/products/:id/details", end.GetProductDetails)
	r.GET("/api/v1/catalog/products/:id/locations", end.ListProductLocations)
	r.GET("/api/v1/catalog/products/:id/categories", end.ListProductCategories)
	r.GET("/api/v1/catalog/products/:id/attributes", end.ListProductAttributes)
	r.GET("/api/v1/catalog/products/:id/reviews", end.ListProductReviews)
	r.POST("/api/v1/catalog/products/:id/reviews", end.CreateProductReview)
	r.PUT("/api/v1/catalog/products/:id/image", end.UpdateProductImage, r.Authorize(ObjectProduct, ActionUpdate))

	r.GET("/api/v1/catalog/attributes", end.ListAttributes)
	r.GET("/api/v1/catalog/attributes/:id", end.GetAttribute)
	r.GET("/api/v1/catalog/attributes/:id/values", end.ListAttributeValues)
}

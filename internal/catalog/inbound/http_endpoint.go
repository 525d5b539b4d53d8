package inbound

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/catalog/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

func paramID(r *router.Request) (int32, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return 0, err
	}
	if id > math.MaxInt32 {
		return 0, goerror.NewInvalidFormat("The id is not a number")
	}
	return int32(id), nil
}

func pageInput(r *router.Request) (usecase.PageInput, error) {
	page, err := r.GetQueryInt("page", 1)
	if err != nil {
		return usecase.PageInput{}, err
	}
	limit, err := r.GetQueryInt("limit", usecase.DefaultPageSize)
	if err != nil {
		return usecase.PageInput{}, err
	}
	descLen, err := r.GetQueryInt("description_length", 0)
	if err != nil {
		return usecase.PageInput{}, err
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = usecase.DefaultPageSize
	}
	if page < 1 || limit < 1 || descLen < 0 || page > math.MaxInt32 {
		return usecase.PageInput{}, goerror.NewInvalidInput(nil, "page", "The page and limit must be positive numbers")
	}

	return usecase.PageInput{
		Page:              int32(page),
		Limit:             int32(min(limit, usecase.MaxPageSize)),
		DescriptionLength: int32(min(descLen, math.MaxInt32)),
	}, nil
}

// ListDepartments returns every department.
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Success 200 {object} router.successResponse{data=[]DepartmentResponse} "Departments"
// @Router /api/v1/catalog/departments [get]
func (h *HTTPEndpoint) ListDepartments(r *router.Request) (any, error) {
	items, err := h.uc.ListDepartments(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(d entity.Department, _ int) DepartmentResponse { return toDepartmentResponse(d) }), nil
}

// GetDepartment returns a department by id.
// @Summary Get department
// @Tags Catalog
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} router.successResponse{data=DepartmentResponse} "Department"
// @Failure 404 {object} router.errorResponse "Department not found (DEP_01)"
// @Router /api/v1/catalog/departments/{id} [get]
func (h *HTTPEndpoint) GetDepartment(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	d, err := h.uc.GetDepartment(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(*d), nil
}

// ListDepartmentCategories returns the categories of a department.
// @Summary List department categories
// @Tags Catalog
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} router.successResponse{data=[]CategoryResponse} "Categories"
// @Failure 404 {object} router.errorResponse "Department not found (DEP_01)"
// @Router /api/v1/catalog/departments/{id}/categories [get]
func (h *HTTPEndpoint) ListDepartmentCategories(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListDepartmentCategories(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c entity.Category, _ int) CategoryResponse { return toCategoryResponse(c) }), nil
}

// ListDepartmentProducts pages through products of every category in a department.
// @Summary List department products
// @Tags Catalog
// @Produce json
// @Param id path int true "Department ID"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 200"
// @Param description_length query int false "Truncate descriptions"
// @Success 200 {object} router.successResponse{data=PageResponse} "Products"
// @Failure 404 {object} router.errorResponse "Department has no categories (DEP_02)"
// @Router /api/v1/catalog/departments/{id}/products [get]
func (h *HTTPEndpoint) ListDepartmentProducts(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}
	in, err := pageInput(r)
	if err != nil {
		return nil, err
	}

	page, err := h.uc.ListDepartmentProducts(r.Context(), id, in)
	if err != nil {
		return nil, err
	}
	return toPageResponse(r.Request, page), nil
}

// ListCategories returns every category.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} router.successResponse{data=[]CategoryResponse} "Categories"
// @Router /api/v1/catalog/categories [get]
func (h *HTTPEndpoint) ListCategories(r *router.Request) (any, error) {
	items, err := h.uc.ListCategories(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c entity.Category, _ int) CategoryResponse { return toCategoryResponse(c) }), nil
}

// GetCategory returns a category by id.
// @Summary Get category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} router.successResponse{data=CategoryResponse} "Category"
// @Failure 404 {object} router.errorResponse "Category not found (CAT_01)"
// @Router /api/v1/catalog/categories/{id} [get]
func (h *HTTPEndpoint) GetCategory(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	c, err := h.uc.GetCategory(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(*c), nil
}

// ListCategoryProducts pages through the products of a category.
// @Summary List category products
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 200"
// @Param description_length query int false "Truncate descriptions"
// @Success 200 {object} router.successResponse{data=PageResponse} "Products"
// @Failure 404 {object} router.errorResponse "Category not found (CAT_01)"
// @Router /api/v1/catalog/categories/{id}/products [get]
func (h *HTTPEndpoint) ListCategoryProducts(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}
	in, err := pageInput(r)
	if err != nil {
		return nil, err
	}

	page, err := h.uc.ListCategoryProducts(r.Context(), id, in)
	if err != nil {
		return nil, err
	}
	return toPageResponse(r.Request, page), nil
}

// ListProducts pages through products, optionally filtered by search.
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param search query string false "Case-insensitive match on name or description"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 200"
// @Param description_length query int false "Truncate descriptions"
// @Success 200 {object} router.successResponse{data=PageResponse} "Products"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/catalog/products [get]
func (h *HTTPEndpoint) ListProducts(r *router.Request) (any, error) {
	in, err := pageInput(r)
	if err != nil {
		return nil, err
	}

	page, err := h.uc.ListProducts(r.Context(), usecase.ListProductsInput{PageInput: in, Search: r.GetQuery("search")})
	if err != nil {
		return nil, err
	}
	return toPageResponse(r.Request, page), nil
}

// SearchProducts is ListProducts with a mandatory query_string.
// @Summary Search products
// @Tags Catalog
// @Produce json
// @Param query_string query string true "Search text"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 200"
// @Success 200 {object} router.successResponse{data=PageResponse} "Products"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/catalog/products-search [get]
func (h *HTTPEndpoint) SearchProducts(r *router.Request) (any, error) {
	in, err := pageInput(r)
	if err != nil {
		return nil, err
	}

	page, err := h.uc.SearchProducts(r.Context(), usecase.SearchProductsInput{
		PageInput:   in,
		QueryString: r.GetQuery("query_string"),
	})
	if err != nil {
		return nil, err
	}
	return toPageResponse(r.Request, page), nil
}

// GetProduct returns a product by id.
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=ProductResponse} "Product"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Router /api/v1/catalog/products/{id} [get]
func (h *HTTPEndpoint) GetProduct(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(*p), nil
}

// GetProductDetails returns a product with its locations and attributes.
// @Summary Get product details
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=ProductDetailsResponse} "Product details"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Router /api/v1/catalog/products/{id}/details [get]
func (h *HTTPEndpoint) GetProductDetails(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	d, err := h.uc.GetProductDetails(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return ProductDetailsResponse{
		ProductResponse: toProductResponse(d.Product),
		Locations:       lo.Map(d.Locations, func(l entity.ProductLocation, _ int) LocationResponse { return toLocationResponse(l) }),
		Attributes: lo.Map(d.Attributes, func(a entity.ProductAttributeValue, _ int) ProductAttributeResponse {
			return toProductAttributeResponse(a)
		}),
	}, nil
}

// ListProductLocations returns the categories and departments a product is listed in.
// @Summary List product locations
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=[]LocationResponse} "Locations"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Router /api/v1/catalog/products/{id}/locations [get]
func (h *HTTPEndpoint) ListProductLocations(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListProductLocations(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(l entity.ProductLocation, _ int) LocationResponse { return toLocationResponse(l) }), nil
}

// ListProductCategories returns the categories of a product.
// @Summary List product categories
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=[]CategoryResponse} "Categories"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Router /api/v1/catalog/products/{id}/categories [get]
func (h *HTTPEndpoint) ListProductCategories(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListProductCategories(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c entity.Category, _ int) CategoryResponse { return toCategoryResponse(c) }), nil
}

// ListProductAttributes returns the attribute values a product can be ordered with.
// @Summary List product attributes
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=[]ProductAttributeResponse} "Attributes"
// @Failure 404 {object} router.errorResponse "Product has no attributes (ATTR_01)"
// @Router /api/v1/catalog/products/{id}/attributes [get]
func (h *HTTPEndpoint) ListProductAttributes(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListProductAttributes(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(a entity.ProductAttributeValue, _ int) ProductAttributeResponse {
		return toProductAttributeResponse(a)
	}), nil
}

// ListProductReviews returns the reviews of a product, newest first.
// @Summary List product reviews
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=[]ReviewResponse} "Reviews"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Router /api/v1/catalog/products/{id}/reviews [get]
func (h *HTTPEndpoint) ListProductReviews(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListProductReviews(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(rv entity.Review, _ int) ReviewResponse { return toReviewResponse(rv) }), nil
}

// CreateProductReview posts a review as the signed in customer.
// @Summary Create product review
// @Tags Catalog
// @Security BearerAuth
// @Security UserKey
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body ReviewRequest true "Review payload"
// @Success 201 {object} router.successResponse{data=ReviewResponse} "Created"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Failure 422 {object} router.errorResponse "Review or rating missing (REV_01)"
// @Router /api/v1/catalog/products/{id}/reviews [post]
func (h *HTTPEndpoint) CreateProductReview(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	var req ReviewRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	rv, err := h.uc.CreateProductReview(r.Context(), usecase.CreateProductReviewInput{
		ProductID: id,
		Review:    req.Review,
		Rating:    req.Rating,
	})
	if err != nil {
		return nil, err
	}

	resp := toReviewResponse(*rv)
	resp.status = http.StatusCreated
	return resp, nil
}

// UpdateProductImage uploads one of the product images.
// @Summary Update product image
// @Tags Catalog
// @Security BearerAuth
// @Security UserKey
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param slot query string false "image, image_2 or thumbnail" default(image)
// @Param image formData file true "Product image"
// @Success 200 {object} router.successResponse{data=ProductResponse} "Product"
// @Failure 403 {object} router.errorResponse "Not allowed (AUT_03)"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Failure 422 {object} router.errorResponse "Missing, unsupported or oversized image"
// @Router /api/v1/catalog/products/{id}/image [put]
func (h *HTTPEndpoint) UpdateProductImage(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	p, err := h.uc.UpdateProductImage(ctx, usecase.UpdateProductImageInput{
		ProductID: id,
		Slot:      entity.ImageSlot(r.GetQuery("slot")),
		File:      file,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(*p), nil
}

// ListAttributes returns every attribute.
// @Summary List attributes
// @Tags Catalog
// @Produce json
// @Success 200 {object} router.successResponse{data=[]AttributeResponse} "Attributes"
// @Router /api/v1/catalog/attributes [get]
func (h *HTTPEndpoint) ListAttributes(r *router.Request) (any, error) {
	items, err := h.uc.ListAttributes(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(a entity.Attribute, _ int) AttributeResponse {
		return AttributeResponse{ID: a.ID, Name: a.Name}
	}), nil
}

// GetAttribute returns an attribute by id.
// @Summary Get attribute
// @Tags Catalog
// @Produce json
// @Param id path int true "Attribute ID"
// @Success 200 {object} router.successResponse{data=AttributeResponse} "Attribute"
// @Failure 404 {object} router.errorResponse "Attribute not found (ATTR_02)"
// @Router /api/v1/catalog/attributes/{id} [get]
func (h *HTTPEndpoint) GetAttribute(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	a, err := h.uc.GetAttribute(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return AttributeResponse{ID: a.ID, Name: a.Name}, nil
}

// ListAttributeValues returns the values of an attribute.
// @Summary List attribute values
// @Tags Catalog
// @Produce json
// @Param id path int true "Attribute ID"
// @Success 200 {object} router.successResponse{data=[]AttributeValueResponse} "Values"
// @Failure 404 {object} router.errorResponse "Attribute has no values (ATTR_00)"
// @Router /api/v1/catalog/attributes/{id}/values [get]
func (h *HTTPEndpoint) ListAttributeValues(r *router.Request) (any, error) {
	id, err := paramID(r)
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListAttributeValues(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(v entity.AttributeValue, _ int) AttributeValueResponse {
		return AttributeValueResponse{ID: v.ID, Value: v.Value}
	}), nil
}

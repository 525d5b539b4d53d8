package inbound

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/catalog/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

type DepartmentResponse struct {
	ID          int32  `json:"department_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toDepartmentResponse(d entity.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description}
}

type CategoryResponse struct {
	ID           int32  `json:"category_id"`
	DepartmentID int32  `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

func toCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, DepartmentID: c.DepartmentID, Name: c.Name, Description: c.Description}
}

type ProductResponse struct {
	ID              int32             `json:"product_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           valueobject.Money `json:"price" swaggertype:"string" example:"14.99"`
	DiscountedPrice valueobject.Money `json:"discounted_price" swaggertype:"string" example:"0.00"`
	Image           string            `json:"image"`
	Image2          string            `json:"image_2"`
	Thumbnail       string            `json:"thumbnail"`
	Display         int16             `json:"display"`
}

func toProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Image:           p.Image,
		Image2:          p.Image2,
		Thumbnail:       p.Thumbnail,
		Display:         p.Display,
	}
}

type LocationResponse struct {
	CategoryID     int32  `json:"category_id"`
	CategoryName   string `json:"category_name"`
	DepartmentID   int32  `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

func toLocationResponse(l entity.ProductLocation) LocationResponse {
	return LocationResponse{
		CategoryID:     l.CategoryID,
		CategoryName:   l.CategoryName,
		DepartmentID:   l.DepartmentID,
		DepartmentName: l.DepartmentName,
	}
}

type ProductAttributeResponse struct {
	AttributeName      string `json:"attribute_name"`
	AttributeValueID   int32  `json:"attribute_value_id"`
	AttributeValueName string `json:"attribute_value"`
}

func toProductAttributeResponse(a entity.ProductAttributeValue) ProductAttributeResponse {
	return ProductAttributeResponse{
		AttributeName:      a.AttributeName,
		AttributeValueID:   a.ValueID,
		AttributeValueName: a.AttributeValue,
	}
}

type ProductDetailsResponse struct {
	ProductResponse
	Locations  []LocationResponse         `json:"locations"`
	Attributes []ProductAttributeResponse `json:"attributes"`
}

type AttributeResponse struct {
	ID   int32  `json:"attribute_id"`
	Name string `json:"name"`
}

type AttributeValueResponse struct {
	ID    int32  `json:"attribute_value_id"`
	Value string `json:"value"`
}

type ReviewRequest struct {
	Review string `json:"review"`
	Rating int16  `json:"rating"`
}

type ReviewResponse struct {
	Name      string    `json:"name"`
	Review    string    `json:"review"`
	Rating    int16     `json:"rating"`
	CreatedOn time.Time `json:"created_on"`

	status int
}

func (r ReviewResponse) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func toReviewResponse(r entity.Review) ReviewResponse {
	return ReviewResponse{Name: r.CustomerName, Review: r.Review, Rating: r.Rating, CreatedOn: r.CreatedOn}
}

// PageResponse links to neighbouring pages with absolute URLs, or null at the edges.
type PageResponse struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Rows     []ProductResponse `json:"rows"`
}

func toPageResponse(r *http.Request, page *usecase.ProductPage) PageResponse {
	resp := PageResponse{
		Count: page.Count,
		Rows:  lo.Map(page.Rows, func(p entity.Product, _ int) ProductResponse { return toProductResponse(p) }),
	}
	if page.HasNext() {
		resp.Next = lo.ToPtr(pageURL(r, page.Page+1, page.Limit))
	}
	if page.HasPrevious() {
		resp.Previous = lo.ToPtr(pageURL(r, page.Page-1, page.Limit))
	}
	return resp
}

// pageURL rebuilds the request URL with page and limit replaced.
func pageURL(r *http.Request, page, limit int32) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	q := r.URL.Query()
	q.Set("page", strconv.FormatInt(int64(page), 10))
	q.Set("limit", strconv.FormatInt(int64(limit), 10))

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}

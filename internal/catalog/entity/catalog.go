package entity

import (
	"time"

	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

type Department struct {
	ID          int32  `json:"department_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Category struct {
	ID           int32  `json:"category_id"`
	DepartmentID int32  `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type Product struct {
	ID              int32
	Name            string
	Description     string
	Price           valueobject.Money
	DiscountedPrice valueobject.Money
	Image           string
	Image2          string
	Thumbnail       string
	Display         int16
}

// ProductLocation places a product in the category tree.
type ProductLocation struct {
	CategoryID     int32
	CategoryName   string
	DepartmentID   int32
	DepartmentName string
}

type Attribute struct {
	ID   int32
	Name string
}

type AttributeValue struct {
	ID          int32
	AttributeID int32
	Value       string
}

// ProductAttributeValue is an attribute value attached to a product.
type ProductAttributeValue struct {
	AttributeName  string
	AttributeValue string
	ValueID        int32
}

type Review struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	ProductID    int32
	Review       string
	Rating       int16
	CreatedOn    time.Time
}

type ProductFilter struct {
	Search       string
	CategoryID   int32
	DepartmentID int32
	Limit        int32
	Offset       int64
	// DescriptionLength truncates descriptions in listings; 0 keeps them whole.
	DescriptionLength int32
}

// ImageSlot names one of the product image columns.
type ImageSlot string

const (
	ImageSlotImage     ImageSlot = "image"
	ImageSlotImage2    ImageSlot = "image_2"
	ImageSlotThumbnail ImageSlot = "thumbnail"
)

func (s ImageSlot) Valid() bool {
	switch s {
	case ImageSlotImage, ImageSlotImage2, ImageSlotThumbnail:
		return true
	default:
		return false
	}
}

// ProductDetails is a product with where it is sold and what it can be ordered as.
type ProductDetails struct {
	Product    Product
	Locations  []ProductLocation
	Attributes []ProductAttributeValue
}

package entity

import (
	"errors"
	"time"

	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

// ErrProductNotFound is returned when a cart item references a missing product.
var ErrProductNotFound = errors.New("product not found")

type OrderStatus int16

const (
	OrderStatusUnpaid OrderStatus = iota
	OrderStatusPaid
	OrderStatusShipped
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusUnpaid:
		return "unpaid"
	case OrderStatusPaid:
		return "paid"
	case OrderStatusShipped:
		return "shipped"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type CartItem struct {
	ItemID     int64
	CartID     string
	ProductID  int32
	Name       string
	Attributes string
	// Price is the discounted price when one is set.
	Price    valueobject.Money
	Quantity int32
	AddedOn  time.Time
}

func (c CartItem) Subtotal() valueobject.Money {
	return c.Price.Mul(c.Quantity)
}

type Cart struct {
	ID    string
	Items []CartItem
}

func (c Cart) Total() valueobject.Money {
	var total valueobject.Money
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

func (c Cart) Quantity() int32 {
	var n int32
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type ShippingRegion struct {
	ID   int32
	Name string
}

type Shipping struct {
	ID       int32
	Type     string
	Cost     valueobject.Money
	RegionID int32
}

type Tax struct {
	ID         int32
	Type       string
	Percentage float64
}

type Order struct {
	ID           int64
	TotalAmount  valueobject.Money
	CreatedOn    time.Time
	ShippedOn    *time.Time
	Status       OrderStatus
	Comments     string
	CustomerID   int64
	CustomerName string
	ShippingID   int32
	TaxID        int32
}

type OrderDetail struct {
	ItemID      int64
	OrderID     int64
	ProductID   int32
	Attributes  string
	ProductName string
	Quantity    int32
	UnitCost    valueobject.Money
}

func (d OrderDetail) Subtotal() valueobject.Money {
	return d.UnitCost.Mul(d.Quantity)
}

// Customer is the part of a customer an order needs.
type Customer struct {
	ID    int64
	Name  string
	Email string
}

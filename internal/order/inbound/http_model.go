package inbound

import (
	"net/http"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/valueobject"
)

type CartIDResponse struct {
	CartID string `json:"cart_id"`
}

type AddCartItemRequest struct {
	ProductID  int32  `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   int32  `json:"quantity"`
}

type CartItemResponse struct {
	ItemID     int64             `json:"item_id,string"`
	ProductID  int32             `json:"product_id"`
	Name       string            `json:"name"`
	Attributes string            `json:"attributes"`
	Price      valueobject.Money `json:"price" swaggertype:"string" example:"14.99"`
	Quantity   int32             `json:"quantity"`
	Subtotal   valueobject.Money `json:"subtotal" swaggertype:"string" example:"29.98"`
}

type CartResponse struct {
	CartID string             `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
	Total  valueobject.Money  `json:"total" swaggertype:"string" example:"29.98"`

	status int
}

func (c CartResponse) StatusCode() int {
	if c.status == 0 {
		return http.StatusOK
	}
	return c.status
}

func toCartResponse(c *entity.Cart, status int) CartResponse {
	return CartResponse{
		CartID: c.ID,
		Items: lo.Map(c.Items, func(it entity.CartItem, _ int) CartItemResponse {
			return CartItemResponse{
				ItemID:     it.ItemID,
				ProductID:  it.ProductID,
				Name:       it.Name,
				Attributes: it.Attributes,
				Price:      it.Price,
				Quantity:   it.Quantity,
				Subtotal:   it.Subtotal(),
			}
		}),
		Total:  c.Total(),
		status: status,
	}
}

type ShippingRegionResponse struct {
	ID   int32  `json:"shipping_region_id"`
	Name string `json:"shipping_region"`
}

type ShippingResponse struct {
	ID       int32             `json:"shipping_id"`
	Type     string            `json:"shipping_type"`
	Cost     valueobject.Money `json:"shipping_cost" swaggertype:"string" example:"20.00"`
	RegionID int32             `json:"shipping_region_id"`
}

type TaxResponse struct {
	ID         int32   `json:"tax_id"`
	Type       string  `json:"tax_type"`
	Percentage float64 `json:"tax_percentage"`
}

type CreateOrderRequest struct {
	CartID     string `json:"cart_id"`
	ShippingID int32  `json:"shipping_id"`
	TaxID      int32  `json:"tax_id"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id,string"`
}

func (CreateOrderResponse) StatusCode() int { return http.StatusCreated }

type OrderResponse struct {
	OrderID     int64             `json:"order_id,string"`
	TotalAmount valueobject.Money `json:"total_amount" swaggertype:"string" example:"31.64"`
	CreatedOn   time.Time         `json:"created_on"`
	ShippedOn   *time.Time        `json:"shipped_on"`
	Status      string            `json:"status"`
	Name        string            `json:"name"`
}

func toOrderResponse(o entity.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount,
		CreatedOn:   o.CreatedOn,
		ShippedOn:   o.ShippedOn,
		Status:      o.Status.String(),
		Name:        o.CustomerName,
	}
}

type OrderDetailResponse struct {
	ItemID      int64             `json:"item_id,string"`
	ProductID   int32             `json:"product_id"`
	Attributes  string            `json:"attributes"`
	ProductName string            `json:"product_name"`
	Quantity    int32             `json:"quantity"`
	UnitCost    valueobject.Money `json:"unit_cost" swaggertype:"string" example:"14.99"`
	Subtotal    valueobject.Money `json:"subtotal" swaggertype:"string" example:"29.98"`
}

func toOrderDetailResponse(d entity.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		ItemID:      d.ItemID,
		ProductID:   d.ProductID,
		Attributes:  d.Attributes,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		Subtotal:    d.Subtotal(),
	}
}

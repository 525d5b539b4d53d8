package inbound

import (
	"math"
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/storefront/internal/order/entity"
	"github.com/shandysiswandi/storefront/internal/order/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
)

const generateCartID = "generate-id"

type HTTPEndpoint struct {
	uc uc
}

// GetCart returns the cart with its total. The id "generate-id" returns a new cart id instead.
// @Summary Get cart
// @Tags Order
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} router.successResponse{data=CartResponse} "Cart"
// @Failure 422 {object} router.errorResponse "Invalid cart id"
// @Router /api/v1/order/carts/{id} [get]
func (h *HTTPEndpoint) GetCart(r *router.Request) (any, error) {
	id := r.GetParam("id")
	if id == generateCartID {
		return h.GenerateCartID(r)
	}

	c, err := h.uc.GetCart(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, http.StatusOK), nil
}

// GenerateCartID returns a fresh cart id.
// @Summary Generate cart id
// @Tags Order
// @Produce json
// @Success 200 {object} router.successResponse{data=CartIDResponse} "Cart id"
// @Router /api/v1/order/carts/generate-id [get]
func (h *HTTPEndpoint) GenerateCartID(r *router.Request) (any, error) {
	return CartIDResponse{CartID: h.uc.GenerateCartID(r.Context())}, nil
}

// AddCartItem adds a product to the cart.
// @Summary Add cart item
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body AddCartItemRequest true "Item payload"
// @Success 201 {object} router.successResponse{data=CartResponse} "Cart"
// @Failure 404 {object} router.errorResponse "Product not found (PRO_01)"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/order/carts/{id}/items [post]
func (h *HTTPEndpoint) AddCartItem(r *router.Request) (any, error) {
	var req AddCartItemRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	c, err := h.uc.AddCartItem(r.Context(), usecase.AddCartItemInput{
		CartID:     r.GetParam("id"),
		ProductID:  req.ProductID,
		Attributes: req.Attributes,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, http.StatusCreated), nil
}

// EmptyCart removes every item from the cart.
// @Summary Empty cart
// @Tags Order
// @Param id path string true "Cart ID"
// @Success 204 "Emptied"
// @Failure 422 {object} router.errorResponse "Invalid cart id"
// @Router /api/v1/order/carts/{id} [delete]
func (h *HTTPEndpoint) EmptyCart(r *router.Request) (any, error) {
	if err := h.uc.EmptyCart(r.Context(), r.GetParam("id")); err != nil {
		return nil, err
	}
	return nil, nil
}

// ListShippingRegions returns every shipping region.
// @Summary List shipping regions
// @Tags Order
// @Produce json
// @Success 200 {object} router.successResponse{data=[]ShippingRegionResponse} "Regions"
// @Router /api/v1/order/shipping-regions [get]
func (h *HTTPEndpoint) ListShippingRegions(r *router.Request) (any, error) {
	items, err := h.uc.ListShippingRegions(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(sr entity.ShippingRegion, _ int) ShippingRegionResponse {
		return ShippingRegionResponse{ID: sr.ID, Name: sr.Name}
	}), nil
}

// ListShippings returns the shipping options of a region.
// @Summary List shippings
// @Tags Order
// @Produce json
// @Param id path int true "Shipping region ID"
// @Success 200 {object} router.successResponse{data=[]ShippingResponse} "Shippings"
// @Router /api/v1/order/shipping-regions/{id}/shippings [get]
func (h *HTTPEndpoint) ListShippings(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}
	if id > math.MaxInt32 {
		return nil, goerror.NewInvalidFormat("The id is not a number")
	}

	items, err := h.uc.ListShippings(r.Context(), int32(id))
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(sh entity.Shipping, _ int) ShippingResponse {
		return ShippingResponse{ID: sh.ID, Type: sh.Type, Cost: sh.Cost, RegionID: sh.RegionID}
	}), nil
}

// ListTaxes returns every tax.
// @Summary List taxes
// @Tags Order
// @Produce json
// @Success 200 {object} router.successResponse{data=[]TaxResponse} "Taxes"
// @Router /api/v1/order/taxes [get]
func (h *HTTPEndpoint) ListTaxes(r *router.Request) (any, error) {
	items, err := h.uc.ListTaxes(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(t entity.Tax, _ int) TaxResponse {
		return TaxResponse{ID: t.ID, Type: t.Type, Percentage: t.Percentage}
	}), nil
}

// CreateOrder places an order for the cart.
// @Summary Create order
// @Tags Order
// @Security BearerAuth
// @Security UserKey
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key for safe retries"
// @Param request body CreateOrderRequest true "Order payload"
// @Success 201 {object} router.successResponse{data=CreateOrderResponse} "Created"
// @Failure 404 {object} router.errorResponse "Shipping (SHP_01) or tax (TAX_01) not found"
// @Failure 409 {object} router.errorResponse "Duplicate submission (ORD_02)"
// @Failure 422 {object} router.errorResponse "Empty cart (CRT_01) or validation error"
// @Router /api/v1/order/orders [post]
func (h *HTTPEndpoint) CreateOrder(r *router.Request) (any, error) {
	var req CreateOrderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	id, err := h.uc.CreateOrder(r.Context(), usecase.CreateOrderInput{
		IdempotencyKey: r.Header.Get(HeaderIdempotencyKey),
		CartID:         req.CartID,
		ShippingID:     req.ShippingID,
		TaxID:          req.TaxID,
	})
	if err != nil {
		return nil, err
	}
	return CreateOrderResponse{OrderID: id}, nil
}

// ListOrders returns the signed in customer's orders.
// @Summary List orders
// @Tags Order
// @Security BearerAuth
// @Security UserKey
// @Produce json
// @Success 200 {object} router.successResponse{data=[]OrderResponse} "Orders"
// @Router /api/v1/order/orders [get]
func (h *HTTPEndpoint) ListOrders(r *router.Request) (any, error) {
	items, err := h.uc.ListOrders(r.Context())
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(o entity.Order, _ int) OrderResponse { return toOrderResponse(o) }), nil
}

// GetOrder returns one of the signed in customer's orders.
// @Summary Get order
// @Tags Order
// @Security BearerAuth
// @Security UserKey
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} router.successResponse{data=OrderResponse} "Order"
// @Failure 404 {object} router.errorResponse "Order not found (ORD_01)"
// @Router /api/v1/order/orders/{id} [get]
func (h *HTTPEndpoint) GetOrder(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	o, err := h.uc.GetOrder(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(*o), nil
}

// ListOrderDetails returns the line items of an order.
// @Summary List order details
// @Tags Order
// @Security BearerAuth
// @Security UserKey
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} router.successResponse{data=[]OrderDetailResponse} "Items"
// @Failure 404 {object} router.errorResponse "Order not found (ORD_01)"
// @Router /api/v1/order/orders/{id}/details [get]
func (h *HTTPEndpoint) ListOrderDetails(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	items, err := h.uc.ListOrderDetails(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(d entity.OrderDetail, _ int) OrderDetailResponse { return toOrderDetailResponse(d) }), nil
}

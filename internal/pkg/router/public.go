package router

import "net/http"

// publicEndpoints lists matched route patterns reachable without a token.
type publicEndpoints map[string]map[string]struct{}

func (p publicEndpoints) has(method, route string) bool {
	_, ok := p[method][route]
	return ok
}

func defaultPublicEndpoints() publicEndpoints {
	return publicEndpoints{
		http.MethodGet: {
			"/":                               {},
			"/health":                         {},
			"/swagger/doc.json":               {},
			"/api/v1/catalog/departments":     {},
			"/api/v1/catalog/departments/:id": {},
			"/api/v1/catalog/departments/:id/categories":   {},
			"/api/v1/catalog/departments/:id/products":     {},
			"/api/v1/catalog/categories":                   {},
			"/api/v1/catalog/categories/:id":               {},
			"/api/v1/catalog/categories/:id/products":      {},
			"/api/v1/catalog/products":                     {},
			"/api/v1/catalog/products-search":              {},
			"/api/v1/catalog/products/:id":                 {},
			"/api/v1/catalog/products/:id/details":         {},
			"/api/v1/catalog/products/:id/locations":       {},
			"/api/v1/catalog/products/:id/categories":      {},
			"/api/v1/catalog/products/:id/reviews":         {},
			"/api/v1/catalog/products/:id/attributes":      {},
			"/api/v1/catalog/attributes":                   {},
			"/api/v1/catalog/attributes/:id":               {},
			"/api/v1/catalog/attributes/:id/values":        {},
			"/api/v1/order/carts/:id":                      {},
			"/api/v1/order/shipping-regions":               {},
			"/api/v1/order/shipping-regions/:id/shippings": {},
			"/api/v1/order/taxes":                          {},
		},
		http.MethodPost: {
			"/api/v1/customer/register":       {},
			"/api/v1/customer/login":          {},
			"/api/v1/customer/login/facebook": {},
			"/api/v1/customer/refresh":        {},
			"/api/v1/order/carts/:id/items":   {},
		},
		http.MethodDelete: {
			"/api/v1/order/carts/:id": {},
		},
	}
}

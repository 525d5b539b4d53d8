package event

const OrderCreatedDestination string = "order_created"
const OrderCreatedConsumerNotification string = "order_created_notification"

type OrderCreatedMessage struct {
	OrderID      int64  `json:"order_id"`
	CustomerID   int64  `json:"customer_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	TotalAmount  string `json:"total_amount"`
	ItemQuantity int32  `json:"item_quantity"`
}

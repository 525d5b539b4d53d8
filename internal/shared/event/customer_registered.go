package event

const CustomerRegisteredDestination string = "customer_registered"
const CustomerRegisteredConsumerNotification string = "customer_registered_notification"

type CustomerRegisteredMessage struct {
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Provider   string `json:"provider,omitempty"`
}

package usecase

// Published to RabbitMQ after a successful create.
type CreatedMsg struct {
	OrderID    string  `json:"orderId"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
}

// Sent by the payment service on Kafka.
type PaymentStatusChangedMsg struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // e.g. "SUCCESS"
}

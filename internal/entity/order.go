package domain

type Status string

const (
	StatusPending          Status = "pending"
	StatusPaymentCompleted Status = "payment_completed"
	StatusFailed           Status = "failed"
)

type Order struct {
	ID                string
	Status            Status
	CustomerID        string
	ShippingAddressID string
}

type OrderItem struct {
	ID               string
	OrderID          string
	ProductVariantID string
	Quantity         int
	Price            float64
}

// Customer is the read-side view fetched from the customer service.
type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

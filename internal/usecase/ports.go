package usecase

import (
	"context"
	"time"

	domain "github.com/Apple-More/order-service/internal/entity"
)

// Persistence shapes (kept out of domain).
type OrderRecord struct {
	ID                string
	Status            string
	CustomerID        string
	ShippingAddressID string
	CreatedAt         time.Time
}

type OrderItemRecord struct {
	ID               string
	OrderID          string
	ProductVariantID string
	Quantity         int
	Price            float64
}

type OrderRepo interface {
	Create(ctx context.Context, o *OrderRecord) error
	GetByID(ctx context.Context, id string) (*OrderRecord, error)
	GetByIDForCustomer(ctx context.Context, id, customerID string) (*OrderRecord, error)
	ListAll(ctx context.Context) ([]OrderRecord, error)
	ListByCustomer(ctx context.Context, customerID string) ([]OrderRecord, error)
	UpdateStatus(ctx context.Context, id, toStatus string) error
	UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus string) (bool, error)
}

type OrderItemRepo interface {
	// BulkInsert writes all items in one transaction: all rows or none.
	BulkInsert(ctx context.Context, items []OrderItemRecord) error
	ListByOrder(ctx context.Context, orderID string) ([]OrderItemRecord, error)
}

// ProductClient talks to the product service.
type ProductClient interface {
	CheckAvailability(ctx context.Context, items []ItemRequest) (*PriceQuote, error)
	GetVariantPrice(ctx context.Context, variantID string) (float64, error)
}

// PaymentClient creates a payment intent and returns its client secret.
type PaymentClient interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

type CustomerClient interface {
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// OrderCache is best-effort: callers must tolerate errors and misses.
type OrderCache interface {
	SetStatus(ctx context.Context, orderID, status string) error
	SetCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, bool, error)
}

type EventPublisher interface {
	PublishCreated(ctx context.Context, msg CreatedMsg) error
}

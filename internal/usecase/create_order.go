package usecase

import (
	"context"
	"errors"
	"time"

	domain "github.com/Apple-More/order-service/internal/entity"
	"github.com/google/uuid"
)

type ItemRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// PricedVariant is the product service's resolved view of one item. Its
// price supersedes anything the caller sent.
type PricedVariant struct {
	ProductVariantID string  `json:"product_variant_id"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
}

type PriceQuote struct {
	VariantDetails []PricedVariant `json:"variantDetails"`
	Amount         float64         `json:"amount"`
}

type CreateOrderInput struct {
	Status            string
	CustomerID        string
	ShippingAddressID string
	Items             []ItemRequest
}

type CreateOrderOutput struct {
	OrderID      string
	ClientSecret string
}

type CreateOrder struct {
	orders   OrderRepo
	items    OrderItemRepo
	products ProductClient
	payments PaymentClient
	cache    OrderCache     // optional
	events   EventPublisher // optional
}

func NewCreateOrder(orders OrderRepo, items OrderItemRepo, products ProductClient, payments PaymentClient, cache OrderCache, events EventPublisher) *CreateOrder {
	return &CreateOrder{orders: orders, items: items, products: products, payments: payments, cache: cache, events: events}
}

func (uc *CreateOrder) Execute(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if err := validateCreate(in); err != nil {
		return CreateOrderOutput{}, err
	}

	// Resolve availability and pricing before touching the store: a failure
	// here must leave no side effects.
	quote, err := uc.products.CheckAvailability(ctx, in.Items)
	if err != nil {
		return CreateOrderOutput{}, dependency(err)
	}
	// A success response with no resolved variants would produce an order
	// with no line items; treat it as an upstream failure.
	if quote == nil || len(quote.VariantDetails) == 0 {
		return CreateOrderOutput{}, dependency(errors.New("pricing resolved no order items"))
	}

	orderID := uuid.NewString()
	rec := &OrderRecord{
		ID:                orderID,
		Status:            in.Status,
		CustomerID:        in.CustomerID,
		ShippingAddressID: in.ShippingAddressID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.orders.Create(ctx, rec); err != nil {
		return CreateOrderOutput{}, persistence(err)
	}

	// Items carry the resolved prices, not caller-supplied ones, and are
	// written all-or-nothing. If the bulk write fails the order row stays
	// behind; mark it failed so it cannot be mistaken for a live order.
	itemRecs := make([]OrderItemRecord, 0, len(quote.VariantDetails))
	for _, v := range quote.VariantDetails {
		itemRecs = append(itemRecs, OrderItemRecord{
			ID:               uuid.NewString(),
			OrderID:          orderID,
			ProductVariantID: v.ProductVariantID,
			Quantity:         v.Quantity,
			Price:            v.Price,
		})
	}
	if err := uc.items.BulkInsert(ctx, itemRecs); err != nil {
		_ = uc.orders.UpdateStatus(ctx, orderID, string(domain.StatusFailed))
		return CreateOrderOutput{}, persistence(err)
	}

	// A payment failure leaves the order and items as written; payment can
	// be re-initiated out of band. No rollback.
	secret, err := uc.payments.CreateIntent(ctx, quote.Amount)
	if err != nil {
		return CreateOrderOutput{}, dependency(err)
	}

	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, orderID, in.Status)
	}
	if uc.events != nil {
		_ = uc.events.PublishCreated(ctx, CreatedMsg{
			OrderID:    orderID,
			CustomerID: in.CustomerID,
			Amount:     quote.Amount,
		})
	}

	return CreateOrderOutput{OrderID: orderID, ClientSecret: secret}, nil
}

func validateCreate(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return invalidRequest("order items are required")
	}
	for _, it := range in.Items {
		if it.VariantID == "" || it.Quantity <= 0 {
			return invalidRequest("each order item must have a variant id and a positive quantity")
		}
	}
	if in.Status == "" || in.CustomerID == "" || in.ShippingAddressID == "" {
		return invalidRequest("order details are missing or incomplete")
	}
	return nil
}

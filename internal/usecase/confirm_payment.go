package usecase

import (
	"context"

	domain "github.com/Apple-More/order-service/internal/entity"
)

// Identity is the authenticated caller, extracted once by the HTTP layer.
type Identity struct {
	UserID string
}

// OrderView is an order with its line items populated.
type OrderView struct {
	Order OrderRecord
	Items []OrderItemRecord
}

type ConfirmPayment struct {
	orders OrderRepo
	items  OrderItemRepo
	cache  OrderCache // optional
}

func NewConfirmPayment(orders OrderRepo, items OrderItemRepo, cache OrderCache) *ConfirmPayment {
	return &ConfirmPayment{orders: orders, items: items, cache: cache}
}

// Execute marks the order payment_completed and returns it with items.
// When ident is non-nil the lookup is scoped to that customer: a caller can
// only confirm their own orders. The target status is fixed; any
// caller-supplied status is ignored.
func (uc *ConfirmPayment) Execute(ctx context.Context, orderID string, ident *Identity) (*OrderView, error) {
	if orderID == "" {
		return nil, invalidRequest("order id is required")
	}

	var (
		rec *OrderRecord
		err error
	)
	if ident != nil {
		rec, err = uc.orders.GetByIDForCustomer(ctx, orderID, ident.UserID)
	} else {
		rec, err = uc.orders.GetByID(ctx, orderID)
	}
	if err != nil {
		return nil, persistence(err)
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, string(domain.StatusPaymentCompleted)); err != nil {
		return nil, persistence(err)
	}
	rec.Status = string(domain.StatusPaymentCompleted)

	items, err := uc.items.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, persistence(err)
	}

	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, orderID, rec.Status)
	}

	return &OrderView{Order: *rec, Items: items}, nil
}

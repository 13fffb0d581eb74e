package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestConfirmPaymentNotFound(t *testing.T) {
	orders := &fakeOrderRepo{} // lookups return ErrNotFound by default
	uc := NewConfirmPayment(orders, &fakeItemRepo{}, nil)

	_, err := uc.Execute(context.Background(), "missing", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(orders.updates) != 0 {
		t.Fatal("status updated for a missing order")
	}
}

func TestConfirmPaymentMissingID(t *testing.T) {
	uc := NewConfirmPayment(&fakeOrderRepo{}, &fakeItemRepo{}, nil)

	_, err := uc.Execute(context.Background(), "", nil)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestConfirmPaymentScopedLookup(t *testing.T) {
	stored := OrderRecord{ID: "O1", Status: "pending", CustomerID: "C1", ShippingAddressID: "A1"}

	orders := &fakeOrderRepo{
		getForFn: func(_ context.Context, id, customerID string) (*OrderRecord, error) {
			if id == stored.ID && customerID == stored.CustomerID {
				rec := stored
				return &rec, nil
			}
			return nil, ErrNotFound
		},
	}
	items := &fakeItemRepo{
		listFn: func(_ context.Context, orderID string) ([]OrderItemRecord, error) {
			return []OrderItemRecord{{ID: "I1", OrderID: orderID, ProductVariantID: "V1", Quantity: 2, Price: 10}}, nil
		},
	}
	cache := newFakeCache()
	uc := NewConfirmPayment(orders, items, cache)

	t.Run("wrong customer -> not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "O1", &Identity{UserID: "C2"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("owning customer -> confirmed with items", func(t *testing.T) {
		view, err := uc.Execute(context.Background(), "O1", &Identity{UserID: "C1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The status written is fixed; caller input never picks it.
		if view.Order.Status != "payment_completed" {
			t.Fatalf("status = %q", view.Order.Status)
		}
		if len(view.Items) != 1 || view.Items[0].OrderID != "O1" {
			t.Fatalf("items = %+v", view.Items)
		}
		if len(orders.updates) != 1 || orders.updates[0].status != "payment_completed" {
			t.Fatalf("updates = %+v", orders.updates)
		}
		if cache.statuses["O1"] != "payment_completed" {
			t.Fatalf("cached status = %q", cache.statuses["O1"])
		}
	})
}

func TestConfirmPaymentUnscopedWithoutIdentity(t *testing.T) {
	orders := &fakeOrderRepo{
		getFn: func(_ context.Context, id string) (*OrderRecord, error) {
			return &OrderRecord{ID: id, Status: "pending", CustomerID: "C1"}, nil
		},
	}
	uc := NewConfirmPayment(orders, &fakeItemRepo{}, nil)

	view, err := uc.Execute(context.Background(), "O1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Order.Status != "payment_completed" {
		t.Fatalf("status = %q", view.Order.Status)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Apple-More/order-service/internal/entity"
)

func TestListOrdersByCustomerRequiresIdentity(t *testing.T) {
	uc := NewListOrders(&fakeOrderRepo{}, &fakeItemRepo{}, &fakeCustomers{}, &fakeProducts{}, nil)

	if _, err := uc.ByCustomer(context.Background(), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.ByCustomer(context.Background(), &Identity{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty user id, got %v", err)
	}
}

func TestListOrdersEnrichment(t *testing.T) {
	orders := &fakeOrderRepo{
		listByFn: func(_ context.Context, customerID string) ([]OrderRecord, error) {
			if customerID != "C1" {
				t.Fatalf("listed for customer %q", customerID)
			}
			return []OrderRecord{{ID: "O1", Status: "pending", CustomerID: "C1"}}, nil
		},
	}
	items := &fakeItemRepo{
		listFn: func(_ context.Context, orderID string) ([]OrderItemRecord, error) {
			return []OrderItemRecord{
				{ID: "I1", OrderID: orderID, ProductVariantID: "V1", Quantity: 2, Price: 10},
				{ID: "I2", OrderID: orderID, ProductVariantID: "V2", Quantity: 1, Price: 5},
			}, nil
		},
	}
	customers := &fakeCustomers{
		getFn: func(_ context.Context, id string) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Ada", Email: "ada@example.com"}, nil
		},
	}
	products := &fakeProducts{
		priceFn: func(_ context.Context, variantID string) (float64, error) {
			switch variantID {
			case "V1":
				return 12, nil
			case "V2":
				return 5, nil
			}
			return 0, errors.New("unknown variant")
		},
	}
	uc := NewListOrders(orders, items, customers, products, nil)

	out, err := uc.ByCustomer(context.Background(), &Identity{UserID: "C1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d orders", len(out))
	}
	got := out[0]
	if got.Customer == nil || got.Customer.Name != "Ada" {
		t.Fatalf("customer = %+v", got.Customer)
	}
	// Total recomputed from current variant prices: 2*12 + 1*5.
	if got.Total != 29 {
		t.Fatalf("total = %v", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %+v", got.Items)
	}
}

func TestListOrdersEnrichmentFailurePropagates(t *testing.T) {
	orders := &fakeOrderRepo{
		listFn: func(_ context.Context) ([]OrderRecord, error) {
			return []OrderRecord{{ID: "O1", CustomerID: "C1"}}, nil
		},
	}
	customers := &fakeCustomers{
		getFn: func(_ context.Context, _ string) (*domain.Customer, error) {
			return nil, errors.New("customer service unavailable")
		},
	}
	uc := NewListOrders(orders, &fakeItemRepo{}, customers, &fakeProducts{}, nil)

	_, err := uc.All(context.Background())
	if !errors.Is(err, ErrDependency) {
		t.Fatalf("expected ErrDependency, got %v", err)
	}
}

func TestListOrdersCustomerCacheHit(t *testing.T) {
	orders := &fakeOrderRepo{
		listFn: func(_ context.Context) ([]OrderRecord, error) {
			return []OrderRecord{{ID: "O1", CustomerID: "C1"}}, nil
		},
	}
	customers := &fakeCustomers{}
	cache := newFakeCache()
	cache.customers["C1"] = &domain.Customer{ID: "C1", Name: "Ada"}
	uc := NewListOrders(orders, &fakeItemRepo{}, customers, &fakeProducts{}, cache)

	out, err := uc.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers.calls != 0 {
		t.Fatalf("customer service called %d times despite cache hit", customers.calls)
	}
	if out[0].Customer == nil || out[0].Customer.Name != "Ada" {
		t.Fatalf("customer = %+v", out[0].Customer)
	}
}

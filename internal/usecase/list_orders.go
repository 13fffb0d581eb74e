package usecase

import (
	"context"

	domain "github.com/Apple-More/order-service/internal/entity"
)

// EnrichedOrder is the read model for the list endpoints: the order, its
// items, the owning customer's details, and a total recomputed from current
// variant prices.
type EnrichedOrder struct {
	Order    OrderRecord
	Items    []OrderItemRecord
	Customer *domain.Customer
	Total    float64
}

type ListOrders struct {
	orders    OrderRepo
	items     OrderItemRepo
	customers CustomerClient
	products  ProductClient
	cache     OrderCache // optional
}

func NewListOrders(orders OrderRepo, items OrderItemRepo, customers CustomerClient, products ProductClient, cache OrderCache) *ListOrders {
	return &ListOrders{orders: orders, items: items, customers: customers, products: products, cache: cache}
}

func (uc *ListOrders) All(ctx context.Context) ([]EnrichedOrder, error) {
	recs, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return uc.enrich(ctx, recs)
}

func (uc *ListOrders) ByCustomer(ctx context.Context, ident *Identity) ([]EnrichedOrder, error) {
	if ident == nil || ident.UserID == "" {
		return nil, invalidRequest("caller identity is required")
	}
	recs, err := uc.orders.ListByCustomer(ctx, ident.UserID)
	if err != nil {
		return nil, persistence(err)
	}
	return uc.enrich(ctx, recs)
}

// enrich fetches customer details and reprices each line from the product
// service. Fetch failures propagate: a partially enriched listing is worse
// than an explicit dependency error.
func (uc *ListOrders) enrich(ctx context.Context, recs []OrderRecord) ([]EnrichedOrder, error) {
	out := make([]EnrichedOrder, 0, len(recs))
	for _, rec := range recs {
		items, err := uc.items.ListByOrder(ctx, rec.ID)
		if err != nil {
			return nil, persistence(err)
		}

		cust, err := uc.lookupCustomer(ctx, rec.CustomerID)
		if err != nil {
			return nil, dependency(err)
		}

		var total float64
		for _, it := range items {
			price, err := uc.products.GetVariantPrice(ctx, it.ProductVariantID)
			if err != nil {
				return nil, dependency(err)
			}
			total += price * float64(it.Quantity)
		}

		out = append(out, EnrichedOrder{Order: rec, Items: items, Customer: cust, Total: total})
	}
	return out, nil
}

func (uc *ListOrders) lookupCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if uc.cache != nil {
		if c, ok, err := uc.cache.GetCustomer(ctx, id); err == nil && ok {
			return c, nil
		}
	}
	c, err := uc.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.SetCustomer(ctx, c)
	}
	return c, nil
}

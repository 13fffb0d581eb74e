package usecase

import (
	"context"
	"errors"
	"sync"

	domain "github.com/Apple-More/order-service/internal/entity"
)

// Function-field fakes: zero value is a working no-op implementation,
// individual calls get overridden per test.

type fakeOrderRepo struct {
	mu      sync.Mutex
	created []OrderRecord
	updates []statusUpdate

	createFn  func(ctx context.Context, o *OrderRecord) error
	getFn     func(ctx context.Context, id string) (*OrderRecord, error)
	getForFn  func(ctx context.Context, id, customerID string) (*OrderRecord, error)
	listFn    func(ctx context.Context) ([]OrderRecord, error)
	listByFn  func(ctx context.Context, customerID string) ([]OrderRecord, error)
	updateFn  func(ctx context.Context, id, toStatus string) error
	updateIfF func(ctx context.Context, id, from, to string) (bool, error)
}

type statusUpdate struct{ id, status string }

func (f *fakeOrderRepo) Create(ctx context.Context, o *OrderRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, o)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *o)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*OrderRecord, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, ErrNotFound
}

func (f *fakeOrderRepo) GetByIDForCustomer(ctx context.Context, id, customerID string) (*OrderRecord, error) {
	if f.getForFn != nil {
		return f.getForFn(ctx, id, customerID)
	}
	return nil, ErrNotFound
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]OrderRecord, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]OrderRecord, error) {
	if f.listByFn != nil {
		return f.listByFn(ctx, customerID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, toStatus string) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, toStatus)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, statusUpdate{id: id, status: toStatus})
	return nil
}

func (f *fakeOrderRepo) UpdateStatusIf(ctx context.Context, id, from, to string) (bool, error) {
	if f.updateIfF != nil {
		return f.updateIfF(ctx, id, from, to)
	}
	return true, nil
}

type fakeItemRepo struct {
	mu       sync.Mutex
	inserted []OrderItemRecord

	bulkFn func(ctx context.Context, items []OrderItemRecord) error
	listFn func(ctx context.Context, orderID string) ([]OrderItemRecord, error)
}

func (f *fakeItemRepo) BulkInsert(ctx context.Context, items []OrderItemRecord) error {
	if f.bulkFn != nil {
		return f.bulkFn(ctx, items)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, items...)
	return nil
}

func (f *fakeItemRepo) ListByOrder(ctx context.Context, orderID string) ([]OrderItemRecord, error) {
	if f.listFn != nil {
		return f.listFn(ctx, orderID)
	}
	return nil, nil
}

type fakeProducts struct {
	checkCalls int

	checkFn func(ctx context.Context, items []ItemRequest) (*PriceQuote, error)
	priceFn func(ctx context.Context, variantID string) (float64, error)
}

func (f *fakeProducts) CheckAvailability(ctx context.Context, items []ItemRequest) (*PriceQuote, error) {
	f.checkCalls++
	if f.checkFn != nil {
		return f.checkFn(ctx, items)
	}
	return &PriceQuote{}, nil
}

func (f *fakeProducts) GetVariantPrice(ctx context.Context, variantID string) (float64, error) {
	if f.priceFn != nil {
		return f.priceFn(ctx, variantID)
	}
	return 0, nil
}

type fakePayments struct {
	calls    int
	secret   string
	intentFn func(ctx context.Context, amount float64) (string, error)
}

func (f *fakePayments) CreateIntent(ctx context.Context, amount float64) (string, error) {
	f.calls++
	if f.intentFn != nil {
		return f.intentFn(ctx, amount)
	}
	return f.secret, nil
}

type fakeCustomers struct {
	calls int
	getFn func(ctx context.Context, id string) (*domain.Customer, error)
}

func (f *fakeCustomers) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	f.calls++
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, errors.New("no customer")
}

type fakeCache struct {
	mu        sync.Mutex
	statuses  map[string]string
	customers map[string]*domain.Customer
}

func newFakeCache() *fakeCache {
	return &fakeCache{statuses: map[string]string{}, customers: map[string]*domain.Customer{}}
}

func (f *fakeCache) SetStatus(ctx context.Context, orderID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[orderID] = status
	return nil
}

func (f *fakeCache) SetCustomer(ctx context.Context, c *domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCache) GetCustomer(ctx context.Context, id string) (*domain.Customer, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	return c, ok, nil
}

type fakeEvents struct {
	mu        sync.Mutex
	published []CreatedMsg
}

func (f *fakeEvents) PublishCreated(ctx context.Context, msg CreatedMsg) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, msg)
	return nil
}

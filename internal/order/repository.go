package order

import (
	"context"
	"errors"
	"sync"

	"github.com/vasiliy-maslov/storefront/internal/cart"
)

var ErrNotFound = errors.New("order not found")

// Repository stores placed orders in insertion order.
type Repository interface {
	Create(ctx context.Context, ord *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, ord *Order) error
	List(ctx context.Context) ([]Order, error)
}

// memoryRepository keeps orders in process memory. Orders are copied on the
// way in and out so callers can never reach into stored state.
type memoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	byID   map[string]int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]int)}
}

func (r *memoryRepository) Create(ctx context.Context, ord *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[ord.ID]; exists {
		return errors.New("repository: order with this id already exists")
	}

	r.byID[ord.ID] = len(r.orders)
	r.orders = append(r.orders, cloneOrder(*ord))
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	ord := cloneOrder(r.orders[idx])
	return &ord, nil
}

func (r *memoryRepository) Update(ctx context.Context, ord *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[ord.ID]
	if !ok {
		return ErrNotFound
	}

	r.orders[idx] = cloneOrder(*ord)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, ord := range r.orders {
		out = append(out, cloneOrder(ord))
	}
	return out, nil
}

func cloneOrder(ord Order) Order {
	items := make([]cart.Item, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items

	if ord.EstimatedDelivery != nil {
		t := *ord.EstimatedDelivery
		ord.EstimatedDelivery = &t
	}
	if ord.DeliveredAt != nil {
		t := *ord.DeliveredAt
		ord.DeliveredAt = &t
	}
	return ord
}

package cart

import (
	"errors"
	"sync"

	"github.com/vasiliy-maslov/storefront/internal/notify"
)

var ErrInvalidItem = errors.New("cart: item must have an id and a non-negative price")

// Item is one cart row. Quantity is always at least 1; an update that would
// drive it to zero or below removes the row instead.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// ItemInput is the narrow shape accepted by Add. The store does not validate
// the id against the catalog; it trusts the caller.
type ItemInput struct {
	ID    string  `json:"id" validate:"required"`
	Title string  `json:"title"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

// Store holds the session's cart. Items keep insertion order; a row added
// again accumulates quantity in place. State lives only for the process
// lifetime, nothing is persisted.
type Store struct {
	mu       sync.Mutex
	items    []Item
	notifier notify.Notifier
}

func NewStore(notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Store{notifier: notifier}
}

// Add appends a new row with the given quantity, or increments the existing
// row when the id is already present. Quantities below 1 count as 1.
func (s *Store) Add(input ItemInput, quantity int) error {
	if input.ID == "" || input.Price < 0 {
		return ErrInvalidItem
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == input.ID {
			s.items[i].Quantity += quantity
			s.mu.Unlock()
			s.notifier.Notify("Cart Updated", "Increased quantity of "+input.Title, notify.SeverityInfo)
			return nil
		}
	}
	s.items = append(s.items, Item{
		ID:       input.ID,
		Title:    input.Title,
		Price:    input.Price,
		Image:    input.Image,
		Quantity: quantity,
	})
	s.mu.Unlock()

	s.notifier.Notify("Added to Cart", input.Title+" has been added to your cart", notify.SeveritySuccess)
	return nil
}

// UpdateQuantity sets the row's quantity without moving it. A quantity of
// zero or below removes the row. Unknown ids are a benign no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
}

// Remove deletes the row if present. Removing an absent id is not an error.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notifier.Notify("Removed from Cart", "Item has been removed from your cart", notify.SeverityInfo)
	}
}

// Items returns a copy of the cart rows in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all row quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all rows, recomputed on
// every call.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart. Checkout calls this after snapshotting.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

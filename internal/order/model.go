package order

import (
	"time"

	"github.com/vasiliy-maslov/storefront/internal/cart"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusProcessing: {
		StatusShipped:   true,
		StatusCancelled: true,
	},
	StatusShipped: {
		StatusDelivered: true,
		StatusCancelled: true,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Order is a placed order. Items and Total are a value snapshot of the cart
// taken at checkout; later cart mutation never touches them.
type Order struct {
	ID                string      `json:"id"`
	UserEmail         string      `json:"user_email"`
	PlacedAt          time.Time   `json:"placed_at"`
	Status            Status      `json:"status"`
	Items             []cart.Item `json:"items"`
	Total             float64     `json:"total"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time  `json:"delivered_at,omitempty"`
}

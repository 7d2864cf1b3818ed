package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/auth"
	"github.com/vasiliy-maslov/storefront/internal/cart"
)

var (
	ErrNotAuthenticated  = errors.New("checkout requires an authenticated session")
	ErrEmptyCart         = errors.New("checkout requires a non-empty cart")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// StatusAll lists orders regardless of status.
const StatusAll = "all"

// Service owns the order lifecycle: checkout creates orders from the live
// cart, status transitions move them forward, and queries return them newest
// first.
type Service interface {
	Checkout(ctx context.Context) (*Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, statusFilter string) ([]Order, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
	Ship(ctx context.Context, id, trackingNumber string, estimatedDelivery time.Time) (*Order, error)
	Deliver(ctx context.Context, id string) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
}

type service struct {
	repo    Repository
	cart    *cart.Store
	session *auth.Session
}

func NewService(repo Repository, cartStore *cart.Store, session *auth.Session) Service {
	return &service{
		repo:    repo,
		cart:    cartStore,
		session: session,
	}
}

// Checkout snapshots the cart into a new processing order owned by the
// current user, then clears the cart. It is rejected while unauthenticated
// or when the cart is empty.
func (s *service) Checkout(ctx context.Context) (*Order, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate order id: %w", err)
	}

	ord := &Order{
		ID:        id.String(),
		UserEmail: user.Email,
		PlacedAt:  time.Now().UTC(),
		Status:    StatusProcessing,
		Items:     items,
		Total:     s.cart.TotalPrice(),
	}

	if err := s.repo.Create(ctx, ord); err != nil {
		log.Error().Err(err).Msg("service: failed to store order at checkout")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	s.cart.Clear()

	log.Info().Str("order_id", ord.ID).Str("user_email", ord.UserEmail).Float64("total", ord.Total).Msg("service: order placed")
	return ord, nil
}

func (s *service) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch order by id: %w", err)
	}
	return ord, nil
}

// ListOrders returns the current user's orders, newest first by PlacedAt.
// statusFilter is a single status or StatusAll.
func (s *service) ListOrders(ctx context.Context, statusFilter string) ([]Order, error) {
	orders, err := s.ownOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if statusFilter == StatusAll || statusFilter == "" || ord.Status.String() == statusFilter {
			filtered = append(filtered, ord)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PlacedAt.After(filtered[j].PlacedAt)
	})

	return filtered, nil
}

// CountByStatus tallies the current user's orders per status.
func (s *service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	orders, err := s.ownOrders(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int)
	for _, ord := range orders {
		counts[ord.Status]++
	}
	return counts, nil
}

func (s *service) ownOrders(ctx context.Context) ([]Order, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	own := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if ord.UserEmail == user.Email {
			own = append(own, ord)
		}
	}
	return own, nil
}

// Ship moves a processing order to shipped and attaches the tracking number
// and estimated delivery date.
func (s *service) Ship(ctx context.Context, id, trackingNumber string, estimatedDelivery time.Time) (*Order, error) {
	return s.transition(ctx, id, StatusShipped, func(ord *Order) {
		ord.TrackingNumber = trackingNumber
		ord.EstimatedDelivery = &estimatedDelivery
	})
}

// Deliver moves a shipped order to delivered, stamps the delivery time and
// drops the now-obsolete estimated delivery.
func (s *service) Deliver(ctx context.Context, id string) (*Order, error) {
	return s.transition(ctx, id, StatusDelivered, func(ord *Order) {
		now := time.Now().UTC()
		ord.DeliveredAt = &now
		ord.EstimatedDelivery = nil
	})
}

// Cancel moves a processing or shipped order to cancelled.
func (s *service) Cancel(ctx context.Context, id string) (*Order, error) {
	return s.transition(ctx, id, StatusCancelled, nil)
}

func (s *service) transition(ctx context.Context, id string, next Status, apply func(*Order)) (*Order, error) {
	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to get order for status update: %w", err)
	}

	if !allowedTransitions[ord.Status][next] {
		log.Warn().
			Str("order_id", ord.ID).
			Str("current_status", ord.Status.String()).
			Str("new_status", next.String()).
			Msg("service: invalid status transition attempt")
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, ord.Status, next)
	}

	ord.Status = next
	if apply != nil {
		apply(ord)
	}

	if err := s.repo.Update(ctx, ord); err != nil {
		return nil, fmt.Errorf("service: failed to update order status: %w", err)
	}

	log.Info().Str("order_id", ord.ID).Str("new_status", next.String()).Msg("service: order status updated")
	return ord, nil
}

package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/notify"
)

type recordedNotification struct {
	title       string
	description string
	severity    notify.Severity
}

type recordingNotifier struct {
	notifications []recordedNotification
}

func (r *recordingNotifier) Notify(title, description string, severity notify.Severity) {
	r.notifications = append(r.notifications, recordedNotification{title, description, severity})
}

func headphones() cart.ItemInput {
	return cart.ItemInput{ID: "1", Title: "Wireless Headphones", Price: 99.99, Image: "headphones.jpg"}
}

func charger() cart.ItemInput {
	return cart.ItemInput{ID: "6", Title: "Phone Charger", Price: 29.99, Image: "charger.jpg"}
}

func TestStore_AddAccumulatesByIdentity(t *testing.T) {
	store := cart.NewStore(nil)

	require.NoError(t, store.Add(headphones(), 1))
	require.NoError(t, store.Add(headphones(), 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestStore_AddRejectsInvalidInput(t *testing.T) {
	store := cart.NewStore(nil)

	assert.ErrorIs(t, store.Add(cart.ItemInput{ID: "", Price: 10}, 1), cart.ErrInvalidItem)
	assert.ErrorIs(t, store.Add(cart.ItemInput{ID: "1", Price: -1}, 1), cart.ErrInvalidItem)
	assert.Empty(t, store.Items())
}

func TestStore_AddNotifications(t *testing.T) {
	notifier := &recordingNotifier{}
	store := cart.NewStore(notifier)

	require.NoError(t, store.Add(headphones(), 1))
	require.NoError(t, store.Add(headphones(), 1))

	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, "Added to Cart", notifier.notifications[0].title)
	assert.Equal(t, "Cart Updated", notifier.notifications[1].title)
	assert.NotEqual(t, notifier.notifications[0].description, notifier.notifications[1].description)
}

func TestStore_UpdateQuantityFloor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero_removes_item", 0},
		{"negative_removes_item", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cart.NewStore(nil)
			require.NoError(t, store.Add(headphones(), 2))

			store.UpdateQuantity("1", tt.quantity)

			assert.Empty(t, store.Items())
			assert.Equal(t, 0, store.TotalItems())
			assert.Equal(t, 0.0, store.TotalPrice())
		})
	}
}

func TestStore_UpdateQuantityKeepsPosition(t *testing.T) {
	store := cart.NewStore(nil)
	require.NoError(t, store.Add(headphones(), 1))
	require.NoError(t, store.Add(charger(), 1))

	store.UpdateQuantity("1", 5)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "6", items[1].ID)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	notifier := &recordingNotifier{}
	store := cart.NewStore(notifier)
	require.NoError(t, store.Add(headphones(), 1))

	store.Remove("missing")

	assert.Len(t, store.Items(), 1)
	// Only the add notification; a no-op removal stays silent.
	assert.Len(t, notifier.notifications, 1)
}

func TestStore_RemoveNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	store := cart.NewStore(notifier)
	require.NoError(t, store.Add(headphones(), 1))

	store.Remove("1")

	assert.Empty(t, store.Items())
	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, "Removed from Cart", notifier.notifications[1].title)
}

func TestStore_TotalsRecomputedAfterEveryMutation(t *testing.T) {
	store := cart.NewStore(nil)

	require.NoError(t, store.Add(headphones(), 2))
	require.NoError(t, store.Add(charger(), 1))
	assert.Equal(t, 3, store.TotalItems())
	assert.InDelta(t, 2*99.99+29.99, store.TotalPrice(), 1e-9)

	store.UpdateQuantity("6", 3)
	assert.Equal(t, 5, store.TotalItems())
	assert.InDelta(t, 2*99.99+3*29.99, store.TotalPrice(), 1e-9)

	store.Remove("1")
	assert.Equal(t, 3, store.TotalItems())
	assert.InDelta(t, 3*29.99, store.TotalPrice(), 1e-9)

	store.Clear()
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestStore_Scenario(t *testing.T) {
	store := cart.NewStore(nil)
	input := cart.ItemInput{ID: "1", Title: "Item", Price: 10}

	require.NoError(t, store.Add(input, 1))
	require.NoError(t, store.Add(input, 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 20.0, store.TotalPrice(), 1e-9)

	store.UpdateQuantity("1", 0)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	store := cart.NewStore(nil)
	require.NoError(t, store.Add(headphones(), 1))

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Items()[0].Quantity)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/storefront/internal/cart"
)

func newCartRouter() (*chi.Mux, *cart.Store) {
	store := cart.NewStore(nil)
	router := chi.NewRouter()
	NewCartHandler(store).RegisterRoutes(router)
	return router, store
}

func doJSON(t *testing.T, router *chi.Mux, method, target, body string) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var state cartResponse
	if rec.Code < 400 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	}
	return rec, state
}

func TestCartHandler_AddItem(t *testing.T) {
	router, _ := newCartRouter()

	rec, state := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"id":"1","title":"Headphones","price":99.99,"image":"h.jpg","quantity":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.TotalItems)
	assert.InDelta(t, 199.98, state.TotalPrice, 1e-9)
}

func TestCartHandler_AddItemValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing_id", `{"title":"Headphones","price":99.99}`},
		{"negative_price", `{"id":"1","price":-5}`},
		{"zero_quantity_rejected_by_validator", `{"id":"1","price":5,"quantity":-1}`},
		{"unknown_field", `{"id":"1","price":5,"sku":"abc"}`},
		{"invalid_json", `{not json}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := newCartRouter()

			rec, _ := doJSON(t, router, http.MethodPost, "/cart/items", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.Items())
		})
	}
}

func TestCartHandler_DefaultQuantityIsOne(t *testing.T) {
	router, _ := newCartRouter()

	rec, state := doJSON(t, router, http.MethodPost, "/cart/items", `{"id":"1","price":10}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	router, store := newCartRouter()
	require.NoError(t, store.Add(cart.ItemInput{ID: "1", Price: 10}, 1))

	rec, state := doJSON(t, router, http.MethodPut, "/cart/items/1", `{"quantity":4}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, state.TotalItems)

	rec, state = doJSON(t, router, http.MethodPut, "/cart/items/1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, state.Items)

	// Removing an id that is not there is still a 200.
	rec, _ = doJSON(t, router, http.MethodDelete, "/cart/items/missing", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	router, store := newCartRouter()
	require.NoError(t, store.Add(cart.ItemInput{ID: "1", Price: 10}, 3))

	rec, state := doJSON(t, router, http.MethodDelete, "/cart", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/cart"
)

// AddItemRequest is the narrow shape accepted for adding to the cart. The id
// is not checked against the catalog; the store trusts the caller.
type AddItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

// CartHandler exposes the cart store.
type CartHandler struct {
	store    *cart.Store
	validate *validator.Validate
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{
		store:    store,
		validate: validator.New(),
	}
}

func (h *CartHandler) RegisterRoutes(router chi.Router) {
	router.Get("/cart", h.handleGetCart)
	router.Post("/cart/items", h.handleAddItem)
	router.Put("/cart/items/{id}", h.handleUpdateQuantity)
	router.Delete("/cart/items/{id}", h.handleRemoveItem)
	router.Delete("/cart", h.handleClearCart)
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.cartState())
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("invalid add-to-cart payload")
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	input := cart.ItemInput{
		ID:    req.ID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}
	if err := h.store.Add(input, quantity); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, h.cartState())
}

func (h *CartHandler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.UpdateQuantity(id, req.Quantity)

	respondWithJSON(w, http.StatusOK, h.cartState())
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.Remove(chi.URLParam(r, "id"))

	respondWithJSON(w, http.StatusOK, h.cartState())
}

func (h *CartHandler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()

	respondWithJSON(w, http.StatusOK, h.cartState())
}

func (h *CartHandler) cartState() cartResponse {
	return cartResponse{
		Items:      h.store.Items(),
		TotalItems: h.store.TotalItems(),
		TotalPrice: h.store.TotalPrice(),
	}
}

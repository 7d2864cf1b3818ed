package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/order"
)

type ShipOrderRequest struct {
	TrackingNumber    string    `json:"tracking_number" validate:"required"`
	EstimatedDelivery time.Time `json:"estimated_delivery" validate:"required"`
}

type checkoutResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

type orderListResponse struct {
	Orders []order.Order        `json:"orders"`
	Counts map[order.Status]int `json:"counts"`
}

// OrderHandler exposes checkout, the order history view and the admin-side
// status transitions.
type OrderHandler struct {
	svc      order.Service
	validate *validator.Validate
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the shopper-facing routes. The caller wraps these in
// the authentication gate.
func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/checkout", h.handleCheckout)
	router.Get("/orders", h.handleListOrders)
	router.Get("/orders/{id}", h.handleGetOrder)
}

// RegisterAdminRoutes mounts the status transitions. The caller wraps these
// in the admin gate.
func (h *OrderHandler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/orders/{id}/ship", h.handleShip)
	router.Post("/orders/{id}/deliver", h.handleDeliver)
	router.Post("/orders/{id}/cancel", h.handleCancel)
}

func (h *OrderHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.Checkout(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("checkout rejected")
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, checkoutResponse{
		OrderID: ord.ID,
		Total:   ord.Total,
	})
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = order.StatusAll
	}

	orders, err := h.svc.ListOrders(r.Context(), statusFilter)
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	counts, err := h.svc.CountByStatus(r.Context())
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, orderListResponse{
		Orders: orders,
		Counts: counts,
	})
}

func (h *OrderHandler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ord)
}

func (h *OrderHandler) handleShip(w http.ResponseWriter, r *http.Request) {
	var req ShipOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := h.svc.Ship(r.Context(), chi.URLParam(r, "id"), req.TrackingNumber, req.EstimatedDelivery)
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ord)
}

func (h *OrderHandler) handleDeliver(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.Deliver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ord)
}

func (h *OrderHandler) handleCancel(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, mapOrderErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ord)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/auth"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin user"`
	Name  string `json:"name,omitempty"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	IsAdmin       bool       `json:"is_admin"`
	User          *auth.User `json:"user,omitempty"`
}

// AuthHandler exposes login, logout and the session view the router consults
// before rendering gated pages.
type AuthHandler struct {
	session  *auth.Session
	validate *validator.Validate
}

func NewAuthHandler(session *auth.Session) *AuthHandler {
	return &AuthHandler{
		session:  session,
		validate: validator.New(),
	}
}

func (h *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Post("/login", h.handleLogin)
	router.Post("/logout", h.handleLogout)
	router.Get("/session", h.handleGetSession)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.session.Login(req.Email, auth.Role(req.Role), req.Name); err != nil {
		if errors.Is(err, auth.ErrInvalidRole) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to log in")
		respondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, h.sessionState())
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(); err != nil {
		log.Error().Err(err).Msg("failed to log out")
		respondWithError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	respondWithJSON(w, http.StatusOK, h.sessionState())
}

func (h *AuthHandler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.sessionState())
}

func (h *AuthHandler) sessionState() sessionResponse {
	resp := sessionResponse{
		Authenticated: h.session.IsAuthenticated(),
		IsAdmin:       h.session.IsAdmin(),
	}
	if user, ok := h.session.User(); ok {
		resp.User = &user
	}
	return resp
}

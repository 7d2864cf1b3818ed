package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vasiliy-maslov/storefront/internal/auth"
	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
	"github.com/vasiliy-maslov/storefront/internal/order"
)

// NewRouter assembles the full storefront route tree. Browsing and the cart
// are open; checkout and order history require authentication; catalog
// replacement and order status transitions are admin only.
func NewRouter(c *catalog.Catalog, cartStore *cart.Store, session *auth.Session, orderSvc order.Service) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	catalogHandler := NewCatalogHandler(c)
	cartHandler := NewCartHandler(cartStore)
	authHandler := NewAuthHandler(session)
	orderHandler := NewOrderHandler(orderSvc)

	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(RequireAuth(session))
		orderHandler.RegisterRoutes(r)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(session))
		catalogHandler.RegisterAdminRoutes(r)
		orderHandler.RegisterAdminRoutes(r)
	})

	return router
}

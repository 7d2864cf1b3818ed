package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

// CatalogHandler serves the product listing with its filter/sort facets.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) RegisterRoutes(router chi.Router) {
	router.Get("/products", h.handleListProducts)
	router.Get("/products/{id}", h.handleGetProduct)
	router.Get("/facets", h.handleGetFacets)
}

// RegisterAdminRoutes mounts the wholesale catalog replace. The caller wraps
// these in the admin gate.
func (h *CatalogHandler) RegisterAdminRoutes(router chi.Router) {
	router.Put("/catalog", h.handleReplaceCatalog)
}

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := catalog.Filter{
		SearchTerm:  query.Get("search"),
		Categories:  query["category"],
		InStockOnly: query.Get("in_stock") == "true",
		OnSaleOnly:  query.Get("on_sale") == "true",
		Sort:        catalog.SortKey(query.Get("sort")),
	}
	for _, raw := range query["price_range"] {
		filter.PriceRanges = append(filter.PriceRanges, catalog.PriceRange(raw))
	}

	products := h.catalog.Apply(filter)

	respondWithJSON(w, http.StatusOK, productListResponse{
		Products: products,
		Total:    len(products),
	})
}

func (h *CatalogHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) handleGetFacets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories":   catalog.Categories,
		"price_ranges": catalog.PriceRanges,
	})
}

func (h *CatalogHandler) handleReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	var products []catalog.Product

	if err := json.NewDecoder(r.Body).Decode(&products); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.catalog.Replace(products)

	log.Info().Int("count", len(products)).Msg("catalog replaced")
	respondWithJSON(w, http.StatusOK, map[string]int{"count": len(products)})
}

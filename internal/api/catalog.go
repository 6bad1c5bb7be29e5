// Package api holds the HTTP handlers of the storefront surface. Handlers
// orchestrate the data provider, the filter engine and the per-session state
// store; the domain packages stay free of HTTP concerns.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"guitar-storefront/internal/catalog"
	"guitar-storefront/internal/logger"
	"guitar-storefront/internal/session"
)

// loadFailedMessage is the static message surfaced when a catalog load
// fails. Retry is the client repeating the request.
const loadFailedMessage = "Failed to load products. Please try again."

// CatalogHandler serves the read-only catalog surface.
type CatalogHandler struct {
	provider catalog.Provider
	sessions *session.Registry
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(provider catalog.Provider, sessions *session.Registry) *CatalogHandler {
	return &CatalogHandler{provider: provider, sessions: sessions}
}

// parseFilterSpec builds a FilterSpec from browse query parameters.
// Non-numeric price bounds are excluded from filtering, not coerced.
func parseFilterSpec(r *http.Request) catalog.FilterSpec {
	q := r.URL.Query()
	spec := catalog.FilterSpec{
		Category: catalog.Category(q.Get("category")),
		Query:    q.Get("q"),
	}
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.MinPrice = &f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.MaxPrice = &f
		}
	}
	if v := q.Get("in_stock"); v != "" {
		spec.InStockOnly, _ = strconv.ParseBool(v)
	}
	return spec
}

// ListProducts handles GET /api/products. The full catalog is loaded from
// the provider, the filter engine derives the visible subset, and the
// session's catalog slice tracks the load outcome and active filters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	spec := parseFilterSpec(r)
	if spec.Category != "" && spec.Category != catalog.CategoryAll && !spec.Category.Valid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	st := h.sessions.Store(w, r)
	st.SetLoading(true)

	products, err := h.provider.ListAll(r.Context())
	if err != nil {
		logger.Errorf("ListProducts: %v", err)
		st.SetError(loadFailedMessage)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}
	st.SetProducts(products)
	if spec.Category != "" {
		st.SetSelectedCategory(spec.Category)
	}
	st.SetSearchQuery(spec.Query)

	visible := catalog.ApplyFilters(products, spec)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.ProductListResponse{Products: visible, Total: len(visible)})
}

// Featured handles GET /api/products/featured.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.provider.Featured(r.Context())
	if err != nil {
		logger.Errorf("Featured: %v", err)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.ProductListResponse{Products: products, Total: len(products)})
}

// SearchProducts handles GET /api/products/search. The provider-level
// search also matches descriptions, unlike the browse filter.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.provider.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.Errorf("SearchProducts: %v", err)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.ProductListResponse{Products: products, Total: len(products)})
}

// ProductsByCategory handles GET /api/categories/{category}/products.
// The "all" pseudo category is resolved here: the provider never sees it.
func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	c := catalog.Category(mux.Vars(r)["category"])

	var products []catalog.Product
	var err error
	switch {
	case c == catalog.CategoryAll:
		products, err = h.provider.ListAll(r.Context())
	case c.Valid():
		products, err = h.provider.FilterByCategory(r.Context(), c)
	default:
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Errorf("ProductsByCategory: %v", err)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.ProductListResponse{Products: products, Total: len(products)})
}

// ProductsByPriceRange handles GET /api/products/price-range. Both bounds
// are required and must be numeric; bounds are inclusive.
func (h *CatalogHandler) ProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	min, errMin := strconv.ParseFloat(r.URL.Query().Get("min"), 64)
	max, errMax := strconv.ParseFloat(r.URL.Query().Get("max"), 64)
	if errMin != nil || errMax != nil {
		http.Error(w, "min and max must be numeric", http.StatusBadRequest)
		return
	}

	products, err := h.provider.FilterByPriceRange(r.Context(), min, max)
	if err != nil {
		logger.Errorf("ProductsByPriceRange: %v", err)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.ProductListResponse{Products: products, Total: len(products)})
}

// CatalogStats summarizes the catalog for the storefront dashboard.
type CatalogStats struct {
	Total      int                      `json:"total"`
	InStock    int                      `json:"in_stock"`
	OutOfStock int                      `json:"out_of_stock"`
	Categories map[catalog.Category]int `json:"categories"`
	PriceRange struct {
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
		Average float64 `json:"average"`
	} `json:"price_range"`
}

// Stats handles GET /api/products/stats.
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	products, err := h.provider.ListAll(r.Context())
	if err != nil {
		logger.Errorf("Stats: %v", err)
		http.Error(w, loadFailedMessage, http.StatusBadGateway)
		return
	}

	stats := CatalogStats{
		Total:      len(products),
		Categories: map[catalog.Category]int{},
	}
	var sum float64
	for i, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		stats.Categories[p.Category]++

		sum += p.Price
		if i == 0 || p.Price < stats.PriceRange.Min {
			stats.PriceRange.Min = p.Price
		}
		if p.Price > stats.PriceRange.Max {
			stats.PriceRange.Max = p.Price
		}
	}
	if len(products) > 0 {
		stats.PriceRange.Average = sum / float64(len(products))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.provider.GetByID(r.Context(), id)
	if err != nil {
		logger.Errorf("GetProduct: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"guitar-storefront/internal/cart"
	"guitar-storefront/internal/catalog"
	"guitar-storefront/internal/logger"
	"guitar-storefront/internal/session"
)

// CartHandler serves the cart endpoints over the session's state store.
type CartHandler struct {
	provider catalog.Provider
	sessions *session.Registry
}

// NewCartHandler creates a cart handler.
func NewCartHandler(provider catalog.Provider, sessions *session.Registry) *CartHandler {
	return &CartHandler{provider: provider, sessions: sessions}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func writeCart(w http.ResponseWriter, c cart.Cart) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Store(w, r)
	writeCart(w, st.Cart())
}

// AddItem handles POST /api/cart/items. The ledger itself accepts any
// product; the out-of-stock guard lives here, at the boundary, standing in
// for the disabled buy button of the original storefront.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}

	product, err := h.provider.GetByID(r.Context(), req.ProductID)
	if err != nil {
		logger.Errorf("AddItem: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	if !product.InStock {
		http.Error(w, "product is out of stock", http.StatusConflict)
		return
	}

	st := h.sessions.Store(w, r)
	writeCart(w, st.AddToCart(*product))
}

// UpdateItem handles PUT /api/cart/items/{id}. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	st := h.sessions.Store(w, r)
	writeCart(w, st.UpdateQuantity(mux.Vars(r)["id"], req.Quantity))
}

// RemoveItem handles DELETE /api/cart/items/{id}. Removing an absent line
// is a no-op, not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Store(w, r)
	writeCart(w, st.RemoveFromCart(mux.Vars(r)["id"]))
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Store(w, r)
	writeCart(w, st.ClearCart())
}

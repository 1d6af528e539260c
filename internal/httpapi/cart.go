package httpapi

import (
	"net/http"

	"boutique-app/internal/cart"
	"boutique-app/internal/product"
	"boutique-app/internal/session"

	"github.com/go-chi/chi/v5"
)

type cartResponse struct {
	Items []cart.Item `json:"items"`
	Total int64       `json:"total"`
	Open  bool        `json:"open"`
}

func (h *Handler) cartView() cartResponse {
	return cartResponse{
		Items: h.sess.Cart.Items(),
		Total: h.sess.Cart.Total(),
		Open:  h.sess.State().CartOpen,
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	h.sess.OpenCart()
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) closeCart(w http.ResponseWriter, r *http.Request) {
	h.sess.CloseCart()
	writeJSON(w, http.StatusOK, h.cartView())
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

// addToCart snapshots the product from the live catalog into the cart.
func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.Get(req.ProductID)
	if !ok {
		writeError(w, r, product.ErrProductNotFound)
		return
	}

	if err := h.sess.Cart.Add(p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) incrementItem(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Cart.Increment(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) decrementItem(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Cart.Decrement(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.sess.Cart.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sess.State())
}

type setViewRequest struct {
	View session.View `json:"view"`
}

func (h *Handler) setView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.View {
	case session.ViewAdmin:
		h.sess.ShowAdmin()
	case session.ViewCustomer:
		h.sess.ShowCustomer()
	default:
		http.Error(w, "view must be customer or admin", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.sess.State())
}

package httpapi

import (
	"net/http"

	"boutique-app/internal/order"

	"github.com/go-chi/chi/v5"
)

// checkout submits the current cart as a pending order and closes the
// cart drawer on success.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var input order.SubmitInput
	if err := decode(r, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.orders.Submit(r.Context(), input, h.sess.Cart)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.sess.CloseCart()
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) pendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Pending(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Confirm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

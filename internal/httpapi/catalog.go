package httpapi

import (
	"net/http"

	"boutique-app/internal/product"

	"github.com/go-chi/chi/v5"
)

// getCatalog serves the storefront view: the session's tab and search term
// are updated from the query and the filtered catalog is returned.
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	if tab := r.URL.Query().Get("tab"); tab != "" {
		if err := h.sess.SetTab(product.Category(tab)); err != nil {
			writeError(w, r, err)
			return
		}
	}
	h.sess.SetSearch(r.URL.Query().Get("q"))

	state := h.sess.State()
	writeJSON(w, http.StatusOK, h.catalog.FilterStorefront(state.Tab, state.Search))
}

// getInventory serves the admin list: id-substring filter only, out-of-stock
// products included.
func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.FilterInventory(r.URL.Query().Get("q")))
}

// deleteProduct removes a product through the gateway and re-fetches the
// catalog so the admin list reflects it.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := h.catalog.Get(id); !ok {
		writeError(w, r, product.ErrProductNotFound)
		return
	}

	if err := h.gateway.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalog.Refresh(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"net/http"

	"boutique-app/internal/auth"
	"boutique-app/internal/logger"
	"boutique-app/internal/middleware"
	"boutique-app/internal/order"
	"boutique-app/internal/product"
	"boutique-app/internal/session"
	"boutique-app/internal/storage"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the storefront and admin operations as a JSON API.
type Handler struct {
	catalog *product.Store
	gateway storage.Backend
	orders  order.Service
	sess    *session.Session
	gate    *auth.Gate
}

func NewHandler(
	catalog *product.Store,
	gateway storage.Backend,
	orders order.Service,
	sess *session.Session,
	gate *auth.Gate,
) *Handler {
	return &Handler{
		catalog: catalog,
		gateway: gateway,
		orders:  orders,
		sess:    sess,
		gate:    gate,
	}
}

// Routes assembles the router. Admin operations sit behind the session
// token check; everything shares request-id, logging and rate limiting.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	// storefront
	r.Get("/catalog", h.getCatalog)
	r.Get("/session", h.getSession)
	r.Post("/session/view", h.setView)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/open", h.openCart)
		r.Post("/close", h.closeCart)
		r.Post("/items", h.addToCart)
		r.Post("/items/{id}/increment", h.incrementItem)
		r.Post("/items/{id}/decrement", h.decrementItem)
		r.Delete("/items/{id}", h.removeItem)
	})

	r.Post("/checkout", h.checkout)
	r.Post("/admin/login", h.adminLogin)

	// admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminOnly(h.gate))

		r.Get("/catalog/inventory", h.getInventory)
		r.Delete("/products/{id}", h.deleteProduct)

		r.Get("/orders", h.listOrders)
		r.Get("/orders/pending", h.pendingOrders)
		r.Post("/orders/{id}/confirm", h.confirmOrder)

		r.Route("/admin/wizard", func(r chi.Router) {
			r.Get("/", h.wizardState)
			r.Post("/next", h.wizardNext)
			r.Post("/back", h.wizardBack)
			r.Post("/edit", h.wizardEdit)
			r.Post("/discard", h.wizardDiscard)
			r.Put("/identity", h.wizardIdentity)
			r.Post("/images", h.wizardAddImage)
			r.Delete("/images/{index}", h.wizardRemoveImage)
			r.Put("/stock", h.wizardStock)
			r.Put("/classification", h.wizardClassification)
			r.Put("/price", h.wizardPrice)
			r.Post("/commit", h.wizardCommit)
		})
	})

	return r
}

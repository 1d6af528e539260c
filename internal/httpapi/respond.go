package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique-app/internal/auth"
	"boutique-app/internal/cart"
	"boutique-app/internal/logger"
	"boutique-app/internal/order"
	"boutique-app/internal/product"
	"boutique-app/internal/wizard"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP statuses. Validation failures are
// 422 (the blocking notification of the original surface); persistence
// fallback is invisible here and never produces an error of its own.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrWrongPassword),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, order.ErrAlreadyConfirmed),
		errors.Is(err, wizard.ErrWrongStep):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, order.ErrMissingName),
		errors.Is(err, order.ErrMissingPhone),
		errors.Is(err, order.ErrMissingLocation),
		errors.Is(err, order.ErrInvalidType),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, product.ErrMissingID),
		errors.Is(err, product.ErrMissingTitle),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, product.ErrNegativeStock),
		errors.Is(err, product.ErrInvalidCategory),
		errors.Is(err, wizard.ErrImageIndexOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

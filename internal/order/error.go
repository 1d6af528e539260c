package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingName     = errors.New("customer name is required")
	ErrMissingPhone    = errors.New("customer phone is required")
	ErrMissingLocation = errors.New("delivery location is required")
	ErrInvalidType     = errors.New("order type must be delivery or booking")
	ErrEmptyCart       = errors.New("cart is empty")

	// -- Resource State --
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyConfirmed = errors.New("order is already confirmed")
)

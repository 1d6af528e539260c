package product

import "errors"

var (
	// -- Validation & Input --
	ErrMissingID       = errors.New("product id is required")
	ErrMissingTitle    = errors.New("product title is required")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrNegativeStock   = errors.New("product stock cannot be negative")
	ErrInvalidCategory = errors.New("product category must be sale or rent")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)

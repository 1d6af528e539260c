package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOutOfStock        = errors.New("product is out of stock")

	// -- Resource State --
	ErrItemNotFound = errors.New("cart item not found")
)

package storage

import (
	"context"

	"boutique-app/internal/product"
)

// ConfirmItem is one order line handed to ConfirmOrder: which product the
// confirmation consumes and how much of it.
type ConfirmItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Backend is the persistence gateway contract. Implementations must not
// expose whether a call was served remotely or locally; callers always
// receive a normal result.
type Backend interface {
	GetProducts(ctx context.Context) ([]product.Product, error)
	AddProduct(ctx context.Context, p product.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ConfirmOrder(ctx context.Context, orderID string, items []ConfirmItem) error
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"boutique-app/internal/logger"
	"boutique-app/internal/product"

	"go.uber.org/zap"
)

// LocalBackend persists the catalog in the local key-value store. It is the
// fallback half of the gateway and the only place orders ever live.
type LocalBackend struct {
	kv *KV
}

func NewLocalBackend(kv *KV) *LocalBackend {
	return &LocalBackend{kv: kv}
}

// GetProducts reads the whole local catalog. Missing or corrupt content is
// treated as an empty catalog rather than an error.
func (b *LocalBackend) GetProducts(ctx context.Context) ([]product.Product, error) {
	data, err := b.kv.Get(KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("local: read products: %w", err)
	}
	if len(data) == 0 {
		return []product.Product{}, nil
	}

	var products []product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.FromCtx(ctx).Warn("local product store is corrupt, treating as empty",
			zap.Error(err),
		)
		return []product.Product{}, nil
	}
	return products, nil
}

func (b *LocalBackend) writeProducts(products []product.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("local: encode products: %w", err)
	}
	if err := b.kv.Set(KeyProducts, data); err != nil {
		return fmt.Errorf("local: write products: %w", err)
	}
	return nil
}

// AddProduct appends p to the local catalog.
func (b *LocalBackend) AddProduct(ctx context.Context, p product.Product) error {
	products, err := b.GetProducts(ctx)
	if err != nil {
		return err
	}
	return b.writeProducts(append(products, p))
}

// DeleteProduct removes every entry matching id from the local catalog.
func (b *LocalBackend) DeleteProduct(ctx context.Context, id string) error {
	products, err := b.GetProducts(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return b.writeProducts(kept)
}

// ConfirmOrder applies an order's stock effects to the local catalog:
// each matching product's stock is decremented by the line quantity, and
// any product whose resulting stock is <= 0 is removed entirely.
func (b *LocalBackend) ConfirmOrder(ctx context.Context, orderID string, items []ConfirmItem) error {
	products, err := b.GetProducts(ctx)
	if err != nil {
		return err
	}

	quantities := make(map[string]int, len(items))
	for _, item := range items {
		quantities[item.ProductID] += item.Quantity
	}

	kept := products[:0]
	for _, p := range products {
		if qty, ok := quantities[p.ID]; ok {
			p.Stock -= qty
		}
		if p.Stock > 0 {
			kept = append(kept, p)
		}
	}

	logger.FromCtx(ctx).Debug("applied order stock effects locally",
		zap.String("order_id", orderID),
		zap.Int("lines", len(items)),
		zap.Int("remaining_products", len(kept)),
	)
	return b.writeProducts(kept)
}

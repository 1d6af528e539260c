package storage

import (
	"context"

	"boutique-app/internal/logger"
	"boutique-app/internal/product"

	"go.uber.org/zap"
)

// FallbackBackend tries the primary backend first and, on any failure,
// delegates the whole call to the secondary. One source serves each call
// exclusively; nothing is merged or reconciled between the two, and the
// primary's failure is never surfaced to the caller.
type FallbackBackend struct {
	primary   Backend
	secondary Backend
}

func NewFallbackBackend(primary, secondary Backend) *FallbackBackend {
	return &FallbackBackend{primary: primary, secondary: secondary}
}

func (b *FallbackBackend) fellBack(ctx context.Context, op string, err error) {
	logger.FromCtx(ctx).Debug("primary backend unavailable, using fallback",
		zap.String("op", op),
		zap.Error(err),
	)
}

func (b *FallbackBackend) GetProducts(ctx context.Context) ([]product.Product, error) {
	products, err := b.primary.GetProducts(ctx)
	if err != nil {
		b.fellBack(ctx, "GetProducts", err)
		return b.secondary.GetProducts(ctx)
	}
	return products, nil
}

func (b *FallbackBackend) AddProduct(ctx context.Context, p product.Product) error {
	if err := b.primary.AddProduct(ctx, p); err != nil {
		b.fellBack(ctx, "AddProduct", err)
		return b.secondary.AddProduct(ctx, p)
	}
	return nil
}

func (b *FallbackBackend) DeleteProduct(ctx context.Context, id string) error {
	if err := b.primary.DeleteProduct(ctx, id); err != nil {
		b.fellBack(ctx, "DeleteProduct", err)
		return b.secondary.DeleteProduct(ctx, id)
	}
	return nil
}

func (b *FallbackBackend) ConfirmOrder(ctx context.Context, orderID string, items []ConfirmItem) error {
	if err := b.primary.ConfirmOrder(ctx, orderID, items); err != nil {
		b.fellBack(ctx, "ConfirmOrder", err)
		return b.secondary.ConfirmOrder(ctx, orderID, items)
	}
	return nil
}

package order

import (
	"context"
	"encoding/json"
	"fmt"

	"boutique-app/internal/logger"
	"boutique-app/internal/storage"

	"go.uber.org/zap"
)

// Repository persists the order list. Orders live only in the local store;
// there is no remote order listing endpoint.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Append(ctx context.Context, o Order) error
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	kv *storage.KV
}

func NewRepository(kv *storage.KV) Repository {
	return &repository{kv: kv}
}

// List reads the whole order list. Missing or corrupt content reads as empty.
func (r *repository) List(ctx context.Context) ([]Order, error) {
	data, err := r.kv.Get(storage.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("orders: read: %w", err)
	}
	if len(data) == 0 {
		return []Order{}, nil
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logger.FromCtx(ctx).Warn("local order store is corrupt, treating as empty",
			zap.Error(err),
		)
		return []Order{}, nil
	}
	return orders, nil
}

func (r *repository) write(orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("orders: encode: %w", err)
	}
	if err := r.kv.Set(storage.KeyOrders, data); err != nil {
		return fmt.Errorf("orders: write: %w", err)
	}
	return nil
}

func (r *repository) Append(ctx context.Context, o Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.write(append(orders, o))
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return r.write(orders)
		}
	}
	return ErrOrderNotFound
}

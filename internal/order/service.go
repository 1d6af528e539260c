package order

import (
	"context"
	"time"

	"boutique-app/internal/cart"
	"boutique-app/internal/logger"
	"boutique-app/internal/storage"

	"go.uber.org/zap"
)

const placeholderTelegram = "@foydalanuvchi"

// SubmitInput carries the customer-supplied checkout fields.
type SubmitInput struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Location      string `json:"location"`
	Type          Type   `json:"type"`
}

// Refresher is the slice of the catalog store the confirm flow needs.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service drives the order workflow: checkout submission and the admin's
// one-way pending -> confirmed transition.
type Service interface {
	Submit(ctx context.Context, input SubmitInput, c *cart.Cart) (*Order, error)
	Confirm(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Pending(ctx context.Context) ([]Order, error)
}

type service struct {
	repo    Repository
	gateway storage.Backend
	catalog Refresher
}

func NewService(repo Repository, gateway storage.Backend, catalog Refresher) Service {
	return &service{repo: repo, gateway: gateway, catalog: catalog}
}

func (input SubmitInput) validate() error {
	if input.CustomerName == "" {
		return ErrMissingName
	}
	if input.CustomerPhone == "" {
		return ErrMissingPhone
	}
	if input.Location == "" {
		return ErrMissingLocation
	}
	if input.Type != "" && input.Type != TypeDelivery && input.Type != TypeBooking {
		return ErrInvalidType
	}
	return nil
}

// Submit turns the current cart plus the checkout fields into a pending
// order, persists it locally and clears the cart. The total is computed
// once here and never recomputed.
func (s *service) Submit(ctx context.Context, input SubmitInput, c *cart.Cart) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "order"),
		zap.String("method", "Submit"),
	)

	if err := input.validate(); err != nil {
		return nil, err
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderType := input.Type
	if orderType == "" {
		orderType = TypeDelivery
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	o := Order{
		ID:            s.uniqueID(existing),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Location:      input.Location,
		Items:         items,
		Type:          orderType,
		Status:        StatusPending,
		TotalPrice:    c.Total(),
		UserTelegram:  placeholderTelegram,
	}

	if err := s.repo.Append(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	c.Clear()

	log.Info("order submitted",
		zap.String("order_id", o.ID),
		zap.String("type", string(o.Type)),
		zap.Int("lines", len(o.Items)),
		zap.Int64("total", o.TotalPrice),
	)
	return &o, nil
}

// uniqueID draws 5-char ids until one is free in the local list. Short ids
// are kept for parity with paper order slips; collisions are only guarded
// within this store.
func (s *service) uniqueID(existing []Order) string {
	taken := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		taken[o.ID] = struct{}{}
	}

	for {
		id := NewID()
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

// Confirm finalizes a pending order: the gateway applies the stock effects,
// the local record flips to confirmed, and the catalog is re-fetched so the
// new stock levels are visible.
func (s *service) Confirm(ctx context.Context, id string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "order"),
		zap.String("method", "Confirm"),
		zap.String("order_id", id),
	)

	start := time.Now()

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var target *Order
	for i := range orders {
		if orders[i].ID == id {
			target = &orders[i]
			break
		}
	}
	if target == nil {
		return nil, ErrOrderNotFound
	}
	if target.Status == StatusConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	lines := make([]storage.ConfirmItem, 0, len(target.Items))
	for _, item := range target.Items {
		lines = append(lines, storage.ConfirmItem{ProductID: item.ID, Quantity: item.Quantity})
	}

	if err := s.gateway.ConfirmOrder(ctx, id, lines); err != nil {
		log.Error("gateway confirm failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusConfirmed); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	target.Status = StatusConfirmed

	if err := s.catalog.Refresh(ctx); err != nil {
		log.Warn("catalog refresh after confirm failed", zap.Error(err))
	}

	log.Info("order confirmed", zap.Duration("duration", time.Since(start)))
	return target, nil
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Pending returns the admin queue: submitted orders not yet confirmed.
func (s *service) Pending(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == StatusPending {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

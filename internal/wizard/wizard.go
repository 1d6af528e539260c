package wizard

import (
	"context"
	"sync"

	"boutique-app/internal/logger"
	"boutique-app/internal/product"
	"boutique-app/internal/storage"

	"go.uber.org/zap"
)

// Step is one of the five linear wizard stages. Navigation moves one step
// at a time; jumps are not representable.
type Step int

const (
	StepIdentity Step = iota
	StepMedia
	StepStock
	StepClassification
	StepPricing
)

// Draft is the partial product accumulated across steps before commit.
type Draft struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Images      []string         `json:"images"`
	Stock       int              `json:"stock"`
	Category    product.Category `json:"category"`
	Size        string           `json:"size"`
	Price       int64            `json:"price"`
	HourlyPrice *int64           `json:"hourlyPrice,omitempty"`
}

func defaultDraft() Draft {
	return Draft{
		Images:   []string{},
		Stock:    1,
		Category: product.CategorySale,
		Size:     "M",
	}
}

// Refresher is the slice of the catalog store the commit step needs.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Wizard is the admin's five-step product builder. Field setters are only
// accepted on the step they belong to; the draft is committed through the
// gateway at the final step only.
type Wizard struct {
	mu      sync.Mutex
	step    Step
	draft   Draft
	gateway storage.Backend
	catalog Refresher
}

func New(gateway storage.Backend, catalog Refresher) *Wizard {
	return &Wizard{draft: defaultDraft(), gateway: gateway, catalog: catalog}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := w.draft
	d.Images = append([]string(nil), w.draft.Images...)
	return d
}

// Next advances one step, clamped at the pricing step.
func (w *Wizard) Next() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step < StepPricing {
		w.step++
	}
	return w.step
}

// Back retreats one step, clamped at the identity step.
func (w *Wizard) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepIdentity {
		w.step--
	}
	return w.step
}

func (w *Wizard) require(step Step) error {
	if w.step != step {
		return ErrWrongStep
	}
	return nil
}

func (w *Wizard) SetIdentity(id, title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepIdentity); err != nil {
		return err
	}
	w.draft.ID = id
	w.draft.Title = title
	return nil
}

// AddImage appends an image URL to the draft. Empty input is ignored, the
// way an empty submit is in the media step.
func (w *Wizard) AddImage(url string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepMedia); err != nil {
		return err
	}
	if url == "" {
		return nil
	}
	w.draft.Images = append(w.draft.Images, url)
	return nil
}

func (w *Wizard) RemoveImage(index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepMedia); err != nil {
		return err
	}
	if index < 0 || index >= len(w.draft.Images) {
		return ErrImageIndexOutOfRange
	}
	w.draft.Images = append(w.draft.Images[:index], w.draft.Images[index+1:]...)
	return nil
}

func (w *Wizard) SetStock(stock int, description string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepStock); err != nil {
		return err
	}
	if stock < 0 {
		return product.ErrNegativeStock
	}
	w.draft.Stock = stock
	w.draft.Description = description
	return nil
}

func (w *Wizard) SetClassification(category product.Category, size string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepClassification); err != nil {
		return err
	}
	if category != product.CategorySale && category != product.CategoryRent {
		return product.ErrInvalidCategory
	}
	w.draft.Category = category
	w.draft.Size = size
	return nil
}

// SetPrice records the price, and for rental items the same value doubles
// as the hourly rate.
func (w *Wizard) SetPrice(price int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepPricing); err != nil {
		return err
	}
	if price < 0 {
		return product.ErrNegativePrice
	}
	w.draft.Price = price
	if w.draft.Category == product.CategoryRent {
		hourly := price
		w.draft.HourlyPrice = &hourly
	} else {
		w.draft.HourlyPrice = nil
	}
	return nil
}

// Edit returns to the first step keeping the draft for modification.
func (w *Wizard) Edit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepPricing); err != nil {
		return err
	}
	w.step = StepIdentity
	return nil
}

// Discard throws the draft away and resets to the first step.
func (w *Wizard) Discard() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.step = StepIdentity
	w.draft = defaultDraft()
}

// Commit validates the accumulated draft, persists it through the gateway,
// refreshes the catalog and resets the wizard. Only valid at the final step.
func (w *Wizard) Commit(ctx context.Context) (*product.Product, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepPricing); err != nil {
		return nil, err
	}

	p := product.Product{
		ID:          w.draft.ID,
		Title:       w.draft.Title,
		Description: w.draft.Description,
		Images:      append([]string(nil), w.draft.Images...),
		Stock:       w.draft.Stock,
		Category:    w.draft.Category,
		Size:        w.draft.Size,
		Price:       w.draft.Price,
		HourlyPrice: w.draft.HourlyPrice,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := w.gateway.AddProduct(ctx, p); err != nil {
		return nil, err
	}
	if err := w.catalog.Refresh(ctx); err != nil {
		logger.FromCtx(ctx).Warn("catalog refresh after commit failed", zap.Error(err))
	}

	logger.FromCtx(ctx).Info("product committed",
		zap.String("product_id", p.ID),
		zap.String("category", string(p.Category)),
		zap.Int("stock", p.Stock),
	)

	w.step = StepIdentity
	w.draft = defaultDraft()
	return &p, nil
}

package cart

import (
	"sync"

	"boutique-app/internal/product"
)

// Item is a snapshot of a product at add time plus the requested quantity.
// The price is locked when the line is created; later catalog changes do
// not flow into an existing line.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Cart holds one session's line items. Quantity bounds are enforced at
// mutation time against the stock snapshot carried on each line.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. An existing line is incremented unless
// it already consumes the product's whole stock; a new line starts at
// quantity 1 and requires the product to be in stock at all.
func (c *Cart) Add(p product.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			if c.items[i].Quantity >= p.Stock {
				return ErrInsufficientStock
			}
			c.items[i].Quantity++
			return nil
		}
	}

	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
	return nil
}

// Increment raises a line's quantity by one, bounded by the stock
// snapshot on the line.
func (c *Cart) Increment(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			if c.items[i].Quantity >= c.items[i].Stock {
				return ErrInsufficientStock
			}
			c.items[i].Quantity++
			return nil
		}
	}
	return ErrItemNotFound
}

// Decrement lowers a line's quantity by one, flooring at 1. Reaching zero
// is only possible through Remove.
func (c *Cart) Decrement(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove drops a line unconditionally. Removing an absent id is a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums price * quantity over all lines, in minor currency units.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

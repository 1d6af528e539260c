package product

import (
	"context"
	"strings"
	"sync"
	"time"

	"boutique-app/internal/logger"

	"go.uber.org/zap"
)

// Lister is the slice of the persistence gateway the catalog needs.
type Lister interface {
	GetProducts(ctx context.Context) ([]Product, error)
}

// Store holds the in-memory catalog. It is refreshed wholesale from the
// gateway after every mutating action; there is no incremental patching.
type Store struct {
	mu       sync.RWMutex
	products []Product
	src      Lister
}

func NewStore(src Lister) *Store {
	return &Store{src: src}
}

// Refresh replaces the catalog with the gateway's current view.
func (s *Store) Refresh(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "Refresh"),
	)

	start := time.Now()

	products, err := s.src.GetProducts(ctx)
	if err != nil {
		log.Error("failed to refresh catalog",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	log.Debug("catalog refreshed",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// All returns a copy of the catalog in its stored order.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FilterStorefront applies the customer-view predicates: the selected
// category tab, and a search term matched against the id (case-sensitive
// substring) or the title (case-insensitive substring).
func (s *Store) FilterStorefront(tab Category, term string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(term)
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category != tab {
			continue
		}
		if strings.Contains(p.ID, term) || strings.Contains(strings.ToLower(p.Title), lowered) {
			out = append(out, p)
		}
	}
	return out
}

// FilterInventory applies the admin-view predicate: id substring only,
// no category restriction. Out-of-stock products stay visible here.
func (s *Store) FilterInventory(term string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(p.ID, term) {
			out = append(out, p)
		}
	}
	return out
}

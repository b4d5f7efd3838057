// Package catalog owns the product collection.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"vendas/internal/core"
	"vendas/internal/storage"

	"github.com/google/uuid"
)

// ErrInvalid wraps validation failures so callers can tell them apart
// from persistence errors.
var ErrInvalid = errors.New("invalid product")

// Service mediates all product mutations. The collection is held in memory
// and persisted whole on every change; the in-memory view updates first and
// is not rolled back if the durable write fails. A mutex serializes access
// so the single-writer assumption holds under concurrent HTTP callers.
type Service struct {
	mu    sync.Mutex
	store storage.RecordStore
	clock core.Clock
	ids   core.IDSource

	products []core.Product
	loaded   bool
}

// ProductFields carries the caller-supplied attributes of a new product.
// Identifier and creation timestamp are assigned by the service.
type ProductFields struct {
	Name      string
	Category  string
	SellPrice core.Money
	CostPrice core.Money
	Stock     *int
}

// ProductPatch is a partial update; nil fields are left untouched. Untrack
// removes stock tracking entirely.
type ProductPatch struct {
	Name      *string
	Category  *string
	SellPrice *core.Money
	CostPrice *core.Money
	Stock     *int
	Untrack   bool
}

func NewService(store storage.RecordStore, clock core.Clock, ids core.IDSource) *Service {
	if clock == nil {
		clock = time.Now
	}
	if ids == nil {
		ids = uuid.NewString
	}
	return &Service{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

// List returns a copy of the product collection.
func (s *Service) List(ctx context.Context) ([]core.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]core.Product(nil), s.products...), nil
}

// Get returns the product with the given id, and whether it exists.
func (s *Service) Get(ctx context.Context, id string) (core.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return core.Product{}, false, err
	}
	for _, p := range s.products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return core.Product{}, false, nil
}

// Add validates the fields, assigns an identifier and creation timestamp,
// appends the product and persists the full collection.
func (s *Service) Add(ctx context.Context, fields ProductFields) (core.Product, error) {
	product := core.Product{
		ID:        s.ids(),
		Name:      fields.Name,
		Category:  fields.Category,
		SellPrice: fields.SellPrice,
		CostPrice: fields.CostPrice,
		Stock:     fields.Stock,
		CreatedAt: s.clock(),
	}
	if err := product.Validate(); err != nil {
		return core.Product{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return core.Product{}, err
	}

	s.products = append(s.products, product)
	if err := s.persist(ctx); err != nil {
		return product, err
	}

	slog.InfoContext(ctx, "Product created",
		"product_id", product.ID,
		"name", product.Name,
		"sell_price_cents", product.SellPrice.Cents,
		"below_cost", product.SellsBelowCost())
	return product, nil
}

// Update merges the patch into the matching record and persists the full
// collection. A missing id is a tolerated no-op, not an error.
func (s *Service) Update(ctx context.Context, id string, patch ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.DebugContext(ctx, "Update for unknown product ignored", "product_id", id)
		return nil
	}

	merged := s.products[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.SellPrice != nil {
		merged.SellPrice = *patch.SellPrice
	}
	if patch.CostPrice != nil {
		merged.CostPrice = *patch.CostPrice
	}
	if patch.Untrack {
		merged.Stock = nil
	} else if patch.Stock != nil {
		stock := *patch.Stock
		merged.Stock = &stock
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s.products[idx] = merged
	return s.persist(ctx)
}

// Delete removes the matching record if present and persists. Missing ids
// are a silent no-op. Sales referencing the product are not touched; their
// denormalized fields keep history stable.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	s.products = kept

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

// DecrementStock lowers tracked stock by qty, flooring at zero. Products
// without tracked stock are left alone. This is the best-effort adjustment
// issued by callers when a sale is recorded; it is never atomic with sale
// creation, and deleting a sale does not restore it.
func (s *Service) DecrementStock(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Stock == nil {
			return nil
		}
		remaining := *s.products[i].Stock - qty
		if remaining < 0 {
			remaining = 0
		}
		s.products[i].Stock = &remaining
		return s.persist(ctx)
	}
	return nil
}

// Reset drops the in-memory copy so the next read reloads from the store.
// Used after the store is cleared underneath the service.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.loaded = false
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	products, err := s.store.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	s.products = products
	s.loaded = true
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.store.SetProducts(ctx, s.products); err != nil {
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}

// Package ledger owns the sale collection. A sale is an immutable fact
// once recorded; there is no update operation.
package ledger

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
var ErrInvalid = errors.New("invalid sale")

// Service mediates sale recording and deletion. Like the catalog, it holds
// the collection in memory, persists whole on every change and serializes
// access with a mutex.
type Service struct {
	mu    sync.Mutex
	store storage.RecordStore
	clock core.Clock
	ids   core.IDSource

	sales  []core.Sale
	loaded bool
}

// SaleFields carries the attributes of a sale at recording time. All money
// values are snapshots from the product: they are fixed here and never
// recomputed from later catalog state.
type SaleFields struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   core.Money
	TotalAmount core.Money
	Profit      core.Money
}

// FieldsFromProduct snapshots the denormalized sale fields from a product
// at sale time.
func FieldsFromProduct(p core.Product, quantity int) SaleFields {
	return SaleFields{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SellPrice,
		TotalAmount: p.SellPrice.Mul(quantity),
		Profit:      p.SellPrice.Sub(p.CostPrice).Mul(quantity),
	}
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

// List returns a copy of the sale collection in recording order.
func (s *Service) List(ctx context.Context) ([]core.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]core.Sale(nil), s.sales...), nil
}

// Add assigns an identifier and timestamp, validates, appends and persists
// the full collection. Stock adjustment on the sold product is the
// caller's responsibility and never part of this write.
func (s *Service) Add(ctx context.Context, fields SaleFields) (core.Sale, error) {
	sale := core.Sale{
		ID:          s.ids(),
		ProductID:   fields.ProductID,
		ProductName: fields.ProductName,
		Quantity:    fields.Quantity,
		UnitPrice:   fields.UnitPrice,
		TotalAmount: fields.TotalAmount,
		Profit:      fields.Profit,
		Timestamp:   s.clock(),
	}
	if err := sale.Validate(); err != nil {
		return core.Sale{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return core.Sale{}, err
	}

	s.sales = append(s.sales, sale)
	if err := s.persist(ctx); err != nil {
		return sale, err
	}

	slog.InfoContext(ctx, "Sale recorded",
		"sale_id", sale.ID,
		"product_id", sale.ProductID,
		"product_name", sale.ProductName,
		"quantity", sale.Quantity,
		"total_cents", sale.TotalAmount.Cents)
	return sale, nil
}

// Delete removes the matching sale if present and persists. Missing ids
// are a silent no-op. Stock decremented when the sale was recorded is not
// restored.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	kept := s.sales[:0]
	removed := false
	for _, sale := range s.sales {
		if sale.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sale)
	}
	if !removed {
		return nil
	}
	s.sales = kept

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Sale deleted", "sale_id", id)
	return nil
}

// Reset drops the in-memory copy so the next read reloads from the store.
// Used after the store is cleared underneath the service.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = nil
	s.loaded = false
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	sales, err := s.store.GetSales(ctx)
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}
	s.sales = sales
	s.loaded = true
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.store.SetSales(ctx, s.sales); err != nil {
		return fmt.Errorf("persist sales: %w", err)
	}
	return nil
}

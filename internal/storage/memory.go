package storage

import (
	"context"
	"sync"

	"vendas/internal/core"
)

// MemoryStore keeps all collections in process memory. Used for tests and
// for running without a database on disk.
type MemoryStore struct {
	mu       sync.Mutex
	products []core.Product
	sales    []core.Sale
	settings *core.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetProducts(_ context.Context) ([]core.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Product(nil), s.products...), nil
}

func (s *MemoryStore) SetProducts(_ context.Context, products []core.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]core.Product(nil), products...)
	return nil
}

func (s *MemoryStore) GetSales(_ context.Context) ([]core.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Sale(nil), s.sales...), nil
}

func (s *MemoryStore) SetSales(_ context.Context, sales []core.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append([]core.Sale(nil), sales...)
	return nil
}

func (s *MemoryStore) GetSettings(_ context.Context) (core.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return core.DefaultSettings(), nil
	}
	return *s.settings, nil
}

func (s *MemoryStore) SetSettings(_ context.Context, settings core.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

func (s *MemoryStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.sales = nil
	s.settings = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

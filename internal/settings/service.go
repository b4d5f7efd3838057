// Package settings owns the settings blob.
package settings

import (
	"context"
	"fmt"

	"vendas/internal/core"
	"vendas/internal/storage"
)

type Service struct {
	store storage.RecordStore
}

func NewService(store storage.RecordStore) *Service {
	return &Service{store: store}
}

// Get returns the stored settings, or the defaults when the collection is
// absent.
func (s *Service) Get(ctx context.Context) (core.Settings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return core.DefaultSettings(), fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *Service) SetDarkMode(ctx context.Context, enabled bool) (core.Settings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return core.DefaultSettings(), fmt.Errorf("get settings: %w", err)
	}
	settings.DarkMode = enabled
	if err := s.store.SetSettings(ctx, settings); err != nil {
		return settings, fmt.Errorf("persist settings: %w", err)
	}
	return settings, nil
}

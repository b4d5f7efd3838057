package settings

import (
	"context"
	"testing"

	"vendas/internal/storage"
)

func TestGetDefaultsWhenAbsent(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DarkMode {
		t.Fatalf("dark mode must default to false")
	}
}

func TestSetDarkMode(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	got, err := svc.SetDarkMode(ctx, true)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !got.DarkMode {
		t.Fatalf("expected dark mode on")
	}

	persisted, _ := store.GetSettings(ctx)
	if !persisted.DarkMode {
		t.Fatalf("settings not persisted")
	}

	got, err = svc.SetDarkMode(ctx, false)
	if err != nil {
		t.Fatalf("unset: %v", err)
	}
	if got.DarkMode {
		t.Fatalf("expected dark mode off")
	}
}

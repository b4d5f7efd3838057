// Package storage implements the record store: durable key-value
// persistence of the product, sale and settings collections. Each
// collection is serialized whole and replaced whole on every write.
package storage

import (
	"context"

	"vendas/internal/core"
)

// Collection names. These are the only keys the store knows about.
const (
	CollectionProducts = "products"
	CollectionSales    = "sales"
	CollectionSettings = "settings"
)

// RecordStore is the persistence boundary. Reads of an absent collection
// return the empty default, not an error. Writes replace the entire
// collection as a unit; no partial-write state is observable to a
// subsequent read.
type RecordStore interface {
	GetProducts(ctx context.Context) ([]core.Product, error)
	SetProducts(ctx context.Context, products []core.Product) error

	GetSales(ctx context.Context) ([]core.Sale, error)
	SetSales(ctx context.Context, sales []core.Sale) error

	GetSettings(ctx context.Context) (core.Settings, error)
	SetSettings(ctx context.Context, settings core.Settings) error

	// ClearAll removes all three collections.
	ClearAll(ctx context.Context) error

	Close() error
}

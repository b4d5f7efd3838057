package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vendas/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores each collection as a single JSON blob row, so a
// write replaces the whole collection in one statement.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) GetProducts(ctx context.Context) ([]core.Product, error) {
	var products []core.Product
	if err := r.getCollection(ctx, CollectionProducts, &products); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (r *SQLiteRepository) SetProducts(ctx context.Context, products []core.Product) error {
	if err := r.setCollection(ctx, CollectionProducts, products); err != nil {
		return fmt.Errorf("set products: %w", err)
	}
	slog.DebugContext(ctx, "Products collection persisted", "count", len(products))
	return nil
}

func (r *SQLiteRepository) GetSales(ctx context.Context) ([]core.Sale, error) {
	var sales []core.Sale
	if err := r.getCollection(ctx, CollectionSales, &sales); err != nil {
		return nil, fmt.Errorf("get sales: %w", err)
	}
	return sales, nil
}

func (r *SQLiteRepository) SetSales(ctx context.Context, sales []core.Sale) error {
	if err := r.setCollection(ctx, CollectionSales, sales); err != nil {
		return fmt.Errorf("set sales: %w", err)
	}
	slog.DebugContext(ctx, "Sales collection persisted", "count", len(sales))
	return nil
}

func (r *SQLiteRepository) GetSettings(ctx context.Context) (core.Settings, error) {
	settings := core.DefaultSettings()
	found, err := r.lookupCollection(ctx, CollectionSettings, &settings)
	if err != nil {
		return core.DefaultSettings(), fmt.Errorf("get settings: %w", err)
	}
	if !found {
		return core.DefaultSettings(), nil
	}
	return settings, nil
}

func (r *SQLiteRepository) SetSettings(ctx context.Context, settings core.Settings) error {
	if err := r.setCollection(ctx, CollectionSettings, settings); err != nil {
		return fmt.Errorf("set settings: %w", err)
	}
	return nil
}

// ClearAll removes the products, sales and settings collections in a
// single transaction.
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	const q = `DELETE FROM collections WHERE name IN (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, CollectionProducts, CollectionSales, CollectionSettings); err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}

	slog.InfoContext(ctx, "All collections cleared")
	return nil
}

// getCollection loads a collection blob into dest, leaving dest untouched
// when the collection is absent.
func (r *SQLiteRepository) getCollection(ctx context.Context, name string, dest any) error {
	_, err := r.lookupCollection(ctx, name, dest)
	return err
}

func (r *SQLiteRepository) lookupCollection(ctx context.Context, name string, dest any) (bool, error) {
	const q = `SELECT data FROM collections WHERE name = ?`
	var blob []byte
	err := r.db.QueryRowContext(ctx, q, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		return false, fmt.Errorf("decode collection %s: %w", name, err)
	}
	return true, nil
}

func (r *SQLiteRepository) setCollection(ctx context.Context, name string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	const q = `INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, q, name, blob); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

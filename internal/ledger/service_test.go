package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vendas/internal/core"
	"vendas/internal/storage"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testNow }

func seqIDs() core.IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("sale-%d", n)
	}
}

func testProduct() core.Product {
	return core.Product{
		ID:        "p1",
		Name:      "Coxinha",
		Category:  "Salgados",
		SellPrice: core.Money{Cents: 500},
		CostPrice: core.Money{Cents: 200},
		CreatedAt: testNow.AddDate(0, -1, 0),
	}
}

func TestFieldsFromProduct(t *testing.T) {
	fields := FieldsFromProduct(testProduct(), 3)
	if fields.ProductID != "p1" || fields.ProductName != "Coxinha" {
		t.Fatalf("identity fields wrong: %+v", fields)
	}
	if fields.UnitPrice.Cents != 500 {
		t.Fatalf("unit price = %d", fields.UnitPrice.Cents)
	}
	if fields.TotalAmount.Cents != 1500 {
		t.Fatalf("total = %d, want 1500", fields.TotalAmount.Cents)
	}
	if fields.Profit.Cents != 900 {
		t.Fatalf("profit = %d, want 900", fields.Profit.Cents)
	}
}

func TestAddSale(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, fixedClock, seqIDs())
	ctx := context.Background()

	sale, err := svc.Add(ctx, FieldsFromProduct(testProduct(), 2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if sale.ID != "sale-1" || !sale.Timestamp.Equal(testNow) {
		t.Fatalf("assigned fields wrong: %+v", sale)
	}

	persisted, _ := store.GetSales(ctx)
	if len(persisted) != 1 || persisted[0].TotalAmount.Cents != 1000 {
		t.Fatalf("collection not persisted: %+v", persisted)
	}
}

func TestAddSaleValidation(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), fixedClock, seqIDs())
	ctx := context.Background()

	cases := []SaleFields{
		{ProductID: "", ProductName: "a", Quantity: 1, UnitPrice: core.Money{Cents: 1}},
		{ProductID: "p", ProductName: "", Quantity: 1, UnitPrice: core.Money{Cents: 1}},
		{ProductID: "p", ProductName: "a", Quantity: 0, UnitPrice: core.Money{Cents: 1}},
		{ProductID: "p", ProductName: "a", Quantity: -1, UnitPrice: core.Money{Cents: 1}},
	}
	for i, fields := range cases {
		if _, err := svc.Add(ctx, fields); err == nil {
			t.Fatalf("case %d expected validation error", i)
		}
	}
}

func TestSaleIsSnapshotNotJoin(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, fixedClock, seqIDs())
	ctx := context.Background()

	product := testProduct()
	sale, err := svc.Add(ctx, FieldsFromProduct(product, 1))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Renaming or repricing the product later must not affect the sale.
	product.Name = "renamed"
	product.SellPrice = core.Money{Cents: 9999}

	got, _ := svc.List(ctx)
	if got[0].ProductName != "Coxinha" || got[0].UnitPrice.Cents != 500 {
		t.Fatalf("sale lost its snapshot: %+v", got[0])
	}
	if got[0].Profit.Cents != sale.Profit.Cents {
		t.Fatalf("profit drifted")
	}
}

func TestDeleteSale(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, fixedClock, seqIDs())
	ctx := context.Background()

	first, _ := svc.Add(ctx, FieldsFromProduct(testProduct(), 1))
	second, _ := svc.Add(ctx, FieldsFromProduct(testProduct(), 2))

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("missing id must not error, got %v", err)
	}

	persisted, _ := store.GetSales(ctx)
	if len(persisted) != 1 || persisted[0].ID != second.ID {
		t.Fatalf("delete left %+v", persisted)
	}
}

func TestListReturnsRecordingOrder(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), fixedClock, seqIDs())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := svc.Add(ctx, FieldsFromProduct(testProduct(), i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	sales, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, s := range sales {
		if want := fmt.Sprintf("sale-%d", i+1); s.ID != want {
			t.Fatalf("order broken at %d: %s", i, s.ID)
		}
	}
}

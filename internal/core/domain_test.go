package core

import (
	"encoding/json"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestProductValidate(t *testing.T) {
	good := Product{
		ID:        "p1",
		Name:      "Coxinha",
		Category:  "Salgados",
		SellPrice: Money{Cents: 500},
		CostPrice: Money{Cents: 200},
		Stock:     intPtr(10),
		CreatedAt: time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Untracked stock is fine.
	good.Stock = nil
	if err := good.Validate(); err != nil {
		t.Fatalf("nil stock should be valid, got %v", err)
	}

	bads := []Product{
		{Name: "", SellPrice: Money{Cents: 1}, CostPrice: Money{Cents: 1}},
		{Name: "   ", SellPrice: Money{Cents: 1}, CostPrice: Money{Cents: 1}},
		{Name: "a", SellPrice: Money{Cents: 0}, CostPrice: Money{Cents: 1}},
		{Name: "a", SellPrice: Money{Cents: 1}, CostPrice: Money{Cents: -1}},
		{Name: "a", SellPrice: Money{Cents: 1}, CostPrice: Money{Cents: 1}, Stock: intPtr(-1)},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestProductSellsBelowCost(t *testing.T) {
	p := Product{Name: "a", SellPrice: Money{Cents: 100}, CostPrice: Money{Cents: 300}}
	// Accepted but flagged.
	if err := p.Validate(); err != nil {
		t.Fatalf("below-cost pricing must still validate, got %v", err)
	}
	if !p.SellsBelowCost() {
		t.Fatalf("expected below-cost flag")
	}
	p.SellPrice = Money{Cents: 300}
	if p.SellsBelowCost() {
		t.Fatalf("equal prices are not below cost")
	}
}

func TestSaleValidate(t *testing.T) {
	good := Sale{
		ID:          "s1",
		ProductID:   "p1",
		ProductName: "Coxinha",
		Quantity:    2,
		UnitPrice:   Money{Cents: 500},
		TotalAmount: Money{Cents: 1000},
		Profit:      Money{Cents: 600},
		Timestamp:   time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Sale{
		{ProductID: "", ProductName: "a", Quantity: 1, UnitPrice: Money{Cents: 1}, Timestamp: time.Now()},
		{ProductID: "p", ProductName: "", Quantity: 1, UnitPrice: Money{Cents: 1}, Timestamp: time.Now()},
		{ProductID: "p", ProductName: "a", Quantity: 0, UnitPrice: Money{Cents: 1}, Timestamp: time.Now()},
		{ProductID: "p", ProductName: "a", Quantity: 1, UnitPrice: Money{Cents: 0}, Timestamp: time.Now()},
		{ProductID: "p", ProductName: "a", Quantity: 1, UnitPrice: Money{Cents: 1}},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateFilterIsValid(t *testing.T) {
	for _, f := range []DateFilter{FilterToday, FilterWeek, FilterMonth} {
		if !f.IsValid() {
			t.Fatalf("%s should be valid", f)
		}
	}
	for _, f := range []DateFilter{"", "all", "year", "TODAY"} {
		if f.IsValid() {
			t.Fatalf("%q should be invalid", f)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	p := Product{
		ID:        "p1",
		Name:      "Bolo",
		SellPrice: Money{Cents: 1250},
		CostPrice: Money{Cents: 480},
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Amounts serialize as flat centavo integers.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if string(raw["sellPrice"]) != "1250" {
		t.Fatalf("sellPrice serialized as %s", raw["sellPrice"])
	}

	var back Product
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.SellPrice.Cents != 1250 || back.CostPrice.Cents != 480 {
		t.Fatalf("round trip lost amounts: %+v", back)
	}
}

package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyReais(t *testing.T) {
	if got := (Money{Cents: 1234}).Reais(); got != 12.34 {
		t.Fatalf("Reais = %v", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 500}
	b := Money{Cents: 200}
	if a.Add(b).Cents != 700 {
		t.Fatalf("Add broken")
	}
	if a.Sub(b).Cents != 300 {
		t.Fatalf("Sub broken")
	}
	if b.Mul(3).Cents != 600 {
		t.Fatalf("Mul broken")
	}
}

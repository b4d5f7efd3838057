package core

import (
	"errors"
	"strings"
	"time"
)

const (
	FilterToday DateFilter = "today"
	FilterWeek  DateFilter = "week"
	FilterMonth DateFilter = "month"
)

type (
	// DateFilter selects the time window applied before aggregation.
	DateFilter string

	Money struct {
		Cents int64
	}

	// Product is a catalog entry. Stock is nil when the vendor does not
	// track stock for this product.
	Product struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		SellPrice Money     `json:"sellPrice"`
		CostPrice Money     `json:"costPrice"`
		Stock     *int      `json:"stock,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// Sale is an immutable fact once recorded. ProductName, UnitPrice,
	// TotalAmount and Profit are copied from the product at sale time and
	// never recomputed from current catalog state.
	Sale struct {
		ID          string    `json:"id"`
		ProductID   string    `json:"productId"`
		ProductName string    `json:"productName"`
		Quantity    int       `json:"quantity"`
		UnitPrice   Money     `json:"unitPrice"`
		TotalAmount Money     `json:"totalAmount"`
		Profit      Money     `json:"profit"`
		Timestamp   time.Time `json:"timestamp"`
	}

	Settings struct {
		DarkMode bool `json:"darkMode"`
	}

	// ProductRank is one row of the top-products list.
	ProductRank struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Revenue  Money  `json:"revenue"`
	}

	// DashboardData is a derived view, recomputed on every query and never
	// persisted.
	DashboardData struct {
		TotalSales  Money         `json:"totalSales"`
		TotalProfit Money         `json:"totalProfit"`
		TotalCosts  Money         `json:"totalCosts"`
		SalesCount  int           `json:"salesCount"`
		TopProducts []ProductRank `json:"topProducts"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNegativeStock   = errors.New("negative stock")
	ErrUnknownFilter   = errors.New("unknown date filter")
	ErrEmptyProductRef = errors.New("empty product reference")
	ErrEmptyTimestamp  = errors.New("timestamp cannot be zero")
)

// Clock supplies the current moment. Window classification takes it
// explicitly so day/week/month boundaries are testable without wall-clock
// timing.
type Clock func() time.Time

// IDSource supplies new unique record identifiers.
type IDSource func() string

func (f DateFilter) IsValid() bool {
	switch f {
	case FilterToday, FilterWeek, FilterMonth:
		return true
	default:
		return false
	}
}

func (f DateFilter) String() string {
	return string(f)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{Cents: m.Cents * int64(qty)}
}

func (p Product) Validate() error {
	if len(strings.TrimSpace(p.Name)) == 0 {
		return ErrEmptyName
	}
	if len(p.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if err := p.SellPrice.Validate(); err != nil {
		return errors.New("invalid sell price: " + err.Error())
	}
	if err := p.CostPrice.Validate(); err != nil {
		return errors.New("invalid cost price: " + err.Error())
	}
	if p.Stock != nil && *p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// SellsBelowCost reports whether the configured sell price is under cost.
// This is not a validation failure: the record is accepted and a warning is
// surfaced to the user instead.
func (p Product) SellsBelowCost() bool {
	return p.SellPrice.Cents < p.CostPrice.Cents
}

// TracksStock reports whether the product has a tracked stock count.
func (p Product) TracksStock() bool {
	return p.Stock != nil
}

func (s Sale) Validate() error {
	if strings.TrimSpace(s.ProductID) == "" {
		return ErrEmptyProductRef
	}
	if len(strings.TrimSpace(s.ProductName)) == 0 {
		return ErrEmptyName
	}
	if s.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if err := s.UnitPrice.Validate(); err != nil {
		return errors.New("invalid unit price: " + err.Error())
	}
	if s.Timestamp.IsZero() {
		return ErrEmptyTimestamp
	}
	return nil
}

// DefaultSettings returns the settings used when the collection is absent.
func DefaultSettings() Settings {
	return Settings{DarkMode: false}
}

package core

import (
	"fmt"
	"sort"
	"time"
)

// TopProductsLimit is how many ranked products the dashboard shows.
const TopProductsLimit = 5

// SaleGroup is one date bucket of a grouped sale listing.
type SaleGroup struct {
	Label string `json:"label"`
	Sales []Sale `json:"sales"`
}

// Subtotal returns the summed totalAmount of the group. Derived on demand,
// never stored.
func (g SaleGroup) Subtotal() Money {
	var sum Money
	for _, s := range g.Sales {
		sum = sum.Add(s.TotalAmount)
	}
	return sum
}

// FilterByWindow returns the sales whose timestamp passes the window
// predicate for filter, evaluated against now. An unrecognized filter is a
// caller programming error and fails fast; it is never treated as "no
// filter". The input slice is not mutated.
func FilterByWindow(sales []Sale, filter DateFilter, now time.Time) ([]Sale, error) {
	if !filter.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	filtered := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if inWindow(s.Timestamp, filter, now) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func inWindow(t time.Time, filter DateFilter, now time.Time) bool {
	switch filter {
	case FilterToday:
		return IsToday(t, now)
	case FilterWeek:
		return IsThisWeek(t, now)
	case FilterMonth:
		return IsThisMonth(t, now)
	default:
		return false
	}
}

// ComputeDashboard derives the dashboard metrics from the sales falling in
// the selected window. Pure and deterministic for a given input and now:
// calling it twice yields identical output and the input is never mutated.
// An empty or fully filtered-out input produces zero totals and an empty
// top-products list, never an error.
func ComputeDashboard(sales []Sale, filter DateFilter, now time.Time) (DashboardData, error) {
	filtered, err := FilterByWindow(sales, filter, now)
	if err != nil {
		return DashboardData{}, err
	}

	var totalSales, totalProfit Money
	for _, s := range filtered {
		totalSales = totalSales.Add(s.TotalAmount)
		totalProfit = totalProfit.Add(s.Profit)
	}

	return DashboardData{
		TotalSales:  totalSales,
		TotalProfit: totalProfit,
		TotalCosts:  totalSales.Sub(totalProfit),
		SalesCount:  len(filtered),
		TopProducts: RankTopProducts(filtered, TopProductsLimit),
	}, nil
}

// RankTopProducts accumulates quantity and revenue per product name and
// returns at most limit entries ordered by quantity descending. The sort is
// stable: products with equal quantities keep the order of their first
// appearance in the input.
func RankTopProducts(sales []Sale, limit int) []ProductRank {
	acc := make(map[string]*ProductRank, len(sales))
	order := make([]string, 0, len(sales))
	for _, s := range sales {
		rank, ok := acc[s.ProductName]
		if !ok {
			rank = &ProductRank{Name: s.ProductName}
			acc[s.ProductName] = rank
			order = append(order, s.ProductName)
		}
		rank.Quantity += s.Quantity
		rank.Revenue = rank.Revenue.Add(s.TotalAmount)
	}

	ranked := make([]ProductRank, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *acc[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// GroupByDate partitions sales into date-labeled groups. Group order
// follows the first occurrence of each label in the input, and sales keep
// their input order within a group; nothing is re-sorted. Callers wanting
// newest-first listings sort before grouping (see SortNewestFirst).
func GroupByDate(sales []Sale) []SaleGroup {
	index := make(map[string]int, len(sales))
	groups := make([]SaleGroup, 0)
	for _, s := range sales {
		label := FormatDateLabel(s.Timestamp)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SaleGroup{Label: label})
		}
		groups[i].Sales = append(groups[i].Sales, s)
	}
	return groups
}

// SortNewestFirst returns a copy of sales ordered by timestamp descending.
// The input slice is left untouched.
func SortNewestFirst(sales []Sale) []Sale {
	sorted := append([]Sale(nil), sales...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

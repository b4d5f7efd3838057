package core

import (
	"testing"
	"time"
)

// Wednesday, 15 January 2025, 12:00 local.
var wed = time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)

func TestIsToday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"same moment", wed, true},
		{"same day earlier hour", time.Date(2025, 1, 15, 0, 0, 1, 0, time.Local), true},
		{"yesterday", wed.AddDate(0, 0, -1), false},
		{"tomorrow", wed.AddDate(0, 0, 1), false},
		{"same day last month", time.Date(2024, 12, 15, 12, 0, 0, 0, time.Local), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsToday(tc.in, wed); got != tc.want {
				t.Fatalf("IsToday(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsThisWeek(t *testing.T) {
	// Week containing wed starts Sunday 12 January at midnight.
	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"week start exactly", time.Date(2025, 1, 12, 0, 0, 0, 0, time.Local), true},
		{"mid week", time.Date(2025, 1, 14, 18, 30, 0, 0, time.Local), true},
		{"saturday before week start", time.Date(2025, 1, 11, 23, 59, 59, 0, time.Local), false},
		{"previous sunday", time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local), false},
		// Forward-open boundary: future timestamps pass. Documented behavior.
		{"next month future date", time.Date(2025, 2, 20, 0, 0, 0, 0, time.Local), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsThisWeek(tc.in, wed); got != tc.want {
				t.Fatalf("IsThisWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsThisWeekOnSunday(t *testing.T) {
	// When now is itself a Sunday, the week starts that same midnight.
	sunday := time.Date(2025, 1, 12, 9, 0, 0, 0, time.Local)
	if !IsThisWeek(time.Date(2025, 1, 12, 0, 0, 0, 0, time.Local), sunday) {
		t.Fatalf("sunday midnight should be in week starting that sunday")
	}
	if IsThisWeek(time.Date(2025, 1, 11, 23, 0, 0, 0, time.Local), sunday) {
		t.Fatalf("saturday night should not be in week starting sunday")
	}
}

func TestIsThisWeekMonthWrap(t *testing.T) {
	// Tuesday 1 April 2025: week start falls back into March.
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.Local)
	if !IsThisWeek(time.Date(2025, 3, 30, 8, 0, 0, 0, time.Local), now) {
		t.Fatalf("sunday 30 march should be in the week of tuesday 1 april")
	}
	if IsThisWeek(time.Date(2025, 3, 29, 8, 0, 0, 0, time.Local), now) {
		t.Fatalf("saturday 29 march should not be in the week of tuesday 1 april")
	}
}

func TestIsThisMonth(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"first of month", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), true},
		{"last of month", time.Date(2025, 1, 31, 23, 59, 0, 0, time.Local), true},
		{"previous month", time.Date(2024, 12, 15, 12, 0, 0, 0, time.Local), false},
		// Same month number, different year must not match.
		{"same month last year", time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsThisMonth(tc.in, wed); got != tc.want {
				t.Fatalf("IsThisMonth(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatLabels(t *testing.T) {
	ts := time.Date(2025, 3, 7, 9, 5, 0, 0, time.Local)
	if got := FormatDateLabel(ts); got != "07/03/2025" {
		t.Fatalf("FormatDateLabel = %q", got)
	}
	if got := FormatTimeLabel(ts); got != "09:05" {
		t.Fatalf("FormatTimeLabel = %q", got)
	}

	// Two timestamps on the same calendar day must share a label.
	later := time.Date(2025, 3, 7, 23, 59, 59, 0, time.Local)
	if FormatDateLabel(ts) != FormatDateLabel(later) {
		t.Fatalf("same-day timestamps produced different labels")
	}
}

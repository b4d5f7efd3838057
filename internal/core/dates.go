package core

import "time"

// Date classification for window filters. Every function takes the current
// moment explicitly instead of reading a shared clock, so boundaries are
// reproducible in tests.

// IsToday reports whether t falls on the same calendar date as now, in
// now's location.
func IsToday(t, now time.Time) bool {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// IsThisWeek reports whether t is on or after the start of the current
// week. The week starts on the most recent Sunday at local midnight.
//
// The boundary is forward-open: no upper bound is checked, so a
// future-dated timestamp counts as this week. Callers must not feed future
// timestamps. Kept deliberately to match established behavior.
func IsThisWeek(t, now time.Time) bool {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := midnight.AddDate(0, 0, -int(now.Weekday()))
	return !t.Before(weekStart)
}

// IsThisMonth reports whether t's month and year both equal now's. December
// of one year and January of the next never match.
func IsThisMonth(t, now time.Time) bool {
	return t.Month() == now.Month() && t.Year() == now.Year()
}

// FormatDateLabel renders a day/month/year label. Two timestamps on the
// same calendar day format identically; GroupByDate relies on this as its
// grouping key.
func FormatDateLabel(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTimeLabel renders an hour:minute label for display.
func FormatTimeLabel(t time.Time) string {
	return t.Format("15:04")
}

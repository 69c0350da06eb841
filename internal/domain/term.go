package domain

import "time"

// TermWindow is the inclusive calendar range over which recurring weekly
// bookings are considered active. Supplied once per run from source data.
type TermWindow struct {
	First time.Time
	Last  time.Time
}

// NewTermWindow builds a window from two date values (time parts dropped).
func NewTermWindow(first, last time.Time) TermWindow {
	return TermWindow{First: DateOnly(first), Last: DateOnly(last)}
}

// SingleDayWindow is the documented fallback for malformed term data:
// a window covering only the given date.
func SingleDayWindow(date time.Time) TermWindow {
	d := DateOnly(date)
	return TermWindow{First: d, Last: d}
}

// Effective returns the bounds actually used for expansion. A window with
// Last before First collapses to First only; it never yields a
// negative-length range.
func (w TermWindow) Effective() (first, last time.Time) {
	if w.Last.Before(w.First) {
		return w.First, w.First
	}
	return w.First, w.Last
}

// DateOnly truncates a timestamp to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

package calendar

import (
	"time"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// Expand turns a term window and a set of weekdays into the concrete
// calendar dates within [First, Last] inclusive whose weekday is in the
// set, in ascending order. Pure function: recomputed on each call,
// nothing cached. A window with Last before First collapses to the
// single day First (see domain.TermWindow.Effective).
func Expand(window domain.TermWindow, days []domain.Weekday) []time.Time {
	set := make(map[domain.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return ExpandSet(window, set)
}

// ExpandSet is Expand for a prebuilt weekday set.
func ExpandSet(window domain.TermWindow, days map[domain.Weekday]struct{}) []time.Time {
	first, last := window.Effective()

	var dates []time.Time
	// AddDate rather than Add(24h): DST transitions must not skip or
	// duplicate calendar days.
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		weekday, ok := domain.FromTimeWeekday(d.Weekday())
		if !ok {
			continue
		}
		if _, wanted := days[weekday]; wanted {
			dates = append(dates, d)
		}
	}
	return dates
}

package domain

import (
	"fmt"

	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

// Interval is a half-open time range [Start, End) within one day.
// Invariant: Start < End.
type Interval struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewInterval builds an interval, enforcing Start < End.
func NewInterval(start, end types.TimeOfDay) (Interval, error) {
	if !start.Valid() || !end.Valid() || !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any time:
// max(a.Start, b.Start) < min(a.End, b.End). Touching endpoints
// (one ends exactly where the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether the given minute falls inside the interval.
func (i Interval) Contains(t types.TimeOfDay) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// String renders the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

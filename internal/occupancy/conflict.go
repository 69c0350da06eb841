package occupancy

import (
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// Overlaps is the overlap predicate for half-open intervals:
// max(a.Start, b.Start) < min(a.End, b.End). A booking ending at 09:00
// does not conflict with one starting at 09:00.
func Overlaps(a, b domain.Interval) bool {
	return a.Overlaps(b)
}

// FindConflicts returns every existing booking on the weekday whose
// interval overlaps the candidate, in start order. An empty result means
// the slot is free.
func (s *Store) FindConflicts(day domain.Weekday, candidate domain.Interval) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Booking
	for _, b := range s.findConflictsLocked(day, candidate) {
		out = append(out, *b)
	}
	return out
}

func (s *Store) findConflictsLocked(day domain.Weekday, candidate domain.Interval) []*domain.Booking {
	var conflicts []*domain.Booking
	for _, existing := range s.days[day] {
		if Overlaps(existing.Interval, candidate) {
			conflicts = append(conflicts, existing)
		}
	}
	return conflicts
}

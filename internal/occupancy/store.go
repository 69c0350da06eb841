package occupancy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// Store holds the booked intervals of a single room, keyed by weekday and
// ordered by interval start. It is the single source of truth for the
// room's occupancy and the only mutation path into it: every insert runs
// the conflict check and the insertion as one step, so the no-overlap
// invariant is a closed property of the store.
//
// Rooms are independent, so each store carries its own lock rather than
// sharing a global one.
type Store struct {
	mu       sync.Mutex
	room     string
	days     map[domain.Weekday][]*domain.Booking
	nextSeq  int
	occupied int
}

// NewStore creates an empty occupancy store for the named room.
func NewStore(room string) *Store {
	return &Store{
		room: room,
		days: make(map[domain.Weekday][]*domain.Booking, len(domain.Weekdays)),
	}
}

// Room returns the name of the room the store belongs to.
func (s *Store) Room() string {
	return s.room
}

// Len returns the number of bookings currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupied
}

// Insert adds one booking after checking it against existing occupancy.
// On conflict nothing is mutated and the conflicting bookings are
// returned alongside ErrConflict.
func (s *Store) Insert(booking *domain.Booking) ([]domain.Booking, error) {
	return s.InsertBatch([]*domain.Booking{booking})
}

// InsertBatch adds a group of bookings atomically: either every booking is
// conflict-free and all are inserted, or none is inserted and the complete
// list of conflicts is returned with ErrConflict. Partial application is
// disallowed: a multi-weekday request must never book some days and skip
// others.
func (s *Store) InsertBatch(bookings []*domain.Booking) ([]domain.Booking, error) {
	for _, b := range bookings {
		if b == nil {
			return nil, fmt.Errorf("%w: nil booking", ErrInvalidBooking)
		}
		if !b.Weekday.Valid() || !b.Interval.Start.Before(b.Interval.End) {
			return nil, fmt.Errorf("%w: weekday=%v interval=%v", ErrInvalidBooking, b.Weekday, b.Interval)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var conflicts []domain.Booking
	for i, b := range bookings {
		for _, existing := range s.findConflictsLocked(b.Weekday, b.Interval) {
			conflicts = append(conflicts, *existing)
		}
		// Candidates in one batch must also not clash with each other.
		for _, earlier := range bookings[:i] {
			if earlier.Weekday == b.Weekday && earlier.Interval.Overlaps(b.Interval) {
				conflicts = append(conflicts, *earlier)
			}
		}
	}
	if len(conflicts) > 0 {
		return conflicts, ErrConflict
	}

	for _, b := range bookings {
		b.Seq = s.nextSeq
		s.nextSeq++
		s.insertOrderedLocked(b)
		s.occupied++
	}
	return nil, nil
}

// insertOrderedLocked places the booking keeping the weekday's list
// ordered by interval start.
func (s *Store) insertOrderedLocked(b *domain.Booking) {
	list := s.days[b.Weekday]
	at := sort.Search(len(list), func(i int) bool {
		return b.Interval.Start.Before(list[i].Interval.Start)
	})
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = b
	s.days[b.Weekday] = list
}

// Query returns the room's bookings for a weekday in start order.
// The result is a copy: callers cannot reach the store's interval set.
func (s *Store) Query(day domain.Weekday) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.days[day]
	out := make([]domain.Booking, len(list))
	for i, b := range list {
		out[i] = *b
	}
	return out
}

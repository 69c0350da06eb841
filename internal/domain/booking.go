package domain

import "time"

// Booking is one atomic occupied slot on one weekday for one room.
type Booking struct {
	ID       string
	Weekday  Weekday
	Interval Interval
	Label    string

	// OriginDate is set for ad-hoc event bookings so a multi-day campaign
	// can later be distinguished from a recurring class. It is nil for
	// recurring class bookings, which apply to every instance of the
	// weekday within the term.
	OriginDate *time.Time

	// Seq is the insertion order within the room's occupancy store.
	// Assigned by the store; used by the grid builder to resolve the
	// (normally impossible) case of two bookings claiming one slot.
	Seq int
}

// IsAdHoc reports whether the booking came from an ad-hoc event request
// rather than a recurring class allocation.
func (b *Booking) IsAdHoc() bool {
	return b.OriginDate != nil
}

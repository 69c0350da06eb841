package occupancy

import "errors"

var (
	// ErrConflict is returned by Insert when the candidate booking overlaps
	// existing occupancy. The store is left untouched.
	ErrConflict = errors.New("occupancy: booking conflicts with existing occupancy")

	// ErrInvalidBooking is returned when a candidate booking has no valid
	// weekday or interval.
	ErrInvalidBooking = errors.New("occupancy: invalid booking")
)

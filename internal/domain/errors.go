package domain

import "errors"

var (
	// ErrUnknownWeekdayToken is returned when a weekday string is not one of
	// the six recognized tokens (Sunday included: the domain has no Sunday)
	ErrUnknownWeekdayToken = errors.New("domain: unknown weekday token")

	// ErrInvalidInterval is returned when an interval does not satisfy start < end
	ErrInvalidInterval = errors.New("domain: interval start must be before end")
)

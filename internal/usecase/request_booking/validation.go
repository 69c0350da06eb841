package request_booking

import (
	"fmt"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// validateRequest валидирует входные данные заявки и собирает интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req == nil {
		return domain.Interval{}, ErrInvalidInput
	}
	if req.Room == "" {
		return domain.Interval{}, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if req.Label == "" {
		return domain.Interval{}, fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	interval, err := domain.NewInterval(req.Start, req.End)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.isMultiDay() && len(req.Weekdays) == 0 {
		return domain.Interval{}, fmt.Errorf("%w: weekday subset is required for a multi-day range", ErrInvalidInput)
	}
	for _, day := range req.Weekdays {
		if !day.Valid() {
			return domain.Interval{}, fmt.Errorf("%w: invalid weekday %d", ErrInvalidInput, int(day))
		}
	}

	return interval, nil
}

// isMultiDay сообщает, охватывает ли заявка больше одного календарного дня
func (r *Request) isMultiDay() bool {
	return !r.EndDate.IsZero() && !domain.SameDay(r.StartDate, r.EndDate)
}

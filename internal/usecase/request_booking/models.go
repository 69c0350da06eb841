package request_booking

import (
	"fmt"
	"time"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

// Request заявка на разовое занятие аудитории.
// Для заявки на один день EndDate нулевая и Weekdays не требуется: день
// недели выводится из даты. Для диапазона дат длиннее одного дня набор
// дней недели обязателен.
type Request struct {
	Room      string
	StartDate time.Time
	EndDate   time.Time
	Weekdays  []domain.Weekday
	Start     types.TimeOfDay
	End       types.TimeOfDay
	Label     string
}

// BookedDay одна созданная бронь: день недели заявки и первая
// конкретная дата этого дня в диапазоне
type BookedDay struct {
	ID         string
	Weekday    domain.Weekday
	OriginDate time.Time
	Interval   domain.Interval
}

// Response результат принятой заявки
type Response struct {
	Room     string
	Label    string
	Bookings []BookedDay
	Dates    []time.Time // все занятые конкретные даты диапазона
}

// Conflict одно пересечение заявки с существующей занятостью
type Conflict struct {
	Date     time.Time
	Weekday  domain.Weekday
	Interval domain.Interval
	Label    string
}

// ConflictError несет полный список пересечений отклоненной заявки.
// Заявка отклоняется целиком: частичное применение по дням запрещено.
type ConflictError struct {
	Conflicts []Conflict
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflict(s)", ErrConflictDetected, len(e.Conflicts))
}

// Unwrap позволяет errors.Is(err, ErrConflictDetected)
func (e *ConflictError) Unwrap() error {
	return ErrConflictDetected
}

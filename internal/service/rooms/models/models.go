package models

import "github.com/salasct/CT-RoomAllocationService/internal/domain"

// DayOccupancy занятые интервалы аудитории на один день недели
type DayOccupancy struct {
	Day      domain.Weekday
	Bookings []domain.Booking
}

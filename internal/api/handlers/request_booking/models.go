package request_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	requestBooking "github.com/salasct/CT-RoomAllocationService/internal/usecase/request_booking"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

var errBadDate = errors.New("request_booking: bad date")

// BookingRequest HTTP-модель заявки. Для одного дня заполняется date,
// для диапазона — startDate, endDate и weekdays (токены дней недели)
type BookingRequest struct {
	Room      string   `json:"room"`
	Date      string   `json:"date,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Label     string   `json:"label"`
}

// BookedDayResponse одна созданная бронь
type BookedDayResponse struct {
	ID         string `json:"id"`
	Weekday    string `json:"weekday"`
	OriginDate string `json:"originDate"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// BookingResponse HTTP-ответ принятой заявки
type BookingResponse struct {
	Room     string              `json:"room"`
	Label    string              `json:"label"`
	Bookings []BookedDayResponse `json:"bookings"`
	Dates    []string            `json:"dates"`
}

// ConflictModel одно пересечение отклоненной заявки
type ConflictModel struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}

// ConflictResponse HTTP-ответ отклоненной заявки с полным списком пересечений
type ConflictResponse struct {
	Error     string          `json:"error"`
	Conflicts []ConflictModel `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP-заявку в модель use case
func (r *BookingRequest) ToUseCaseRequest() (*requestBooking.Request, error) {
	req := &requestBooking.Request{
		Room:  r.Room,
		Label: r.Label,
	}

	switch {
	case r.Date != "":
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", errBadDate, r.Date)
		}
		req.StartDate = date
	case r.StartDate != "":
		start, err := time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate %q", errBadDate, r.StartDate)
		}
		end, err := time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate %q", errBadDate, r.EndDate)
		}
		req.StartDate = start
		req.EndDate = end
	default:
		return nil, fmt.Errorf("%w: date or startDate is required", errBadDate)
	}

	for _, token := range r.Weekdays {
		day, err := domain.ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		req.Weekdays = append(req.Weekdays, day)
	}

	start, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, err
	}
	req.Start = start
	req.End = end

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *requestBooking.Response) *BookingResponse {
	out := &BookingResponse{
		Room:     resp.Room,
		Label:    resp.Label,
		Bookings: make([]BookedDayResponse, len(resp.Bookings)),
		Dates:    make([]string, len(resp.Dates)),
	}
	for i, b := range resp.Bookings {
		out.Bookings[i] = BookedDayResponse{
			ID:         b.ID,
			Weekday:    b.Weekday.String(),
			OriginDate: b.OriginDate.Format(domain.DateFormat),
			StartTime:  b.Interval.Start.String(),
			EndTime:    b.Interval.End.String(),
		}
	}
	for i, d := range resp.Dates {
		out.Dates[i] = d.Format(domain.DateFormat)
	}
	return out
}

// FromConflicts конвертирует список пересечений в HTTP-модель
func FromConflicts(message string, conflicts []requestBooking.Conflict) *ConflictResponse {
	out := &ConflictResponse{
		Error:     message,
		Conflicts: make([]ConflictModel, len(conflicts)),
	}
	for i, c := range conflicts {
		out.Conflicts[i] = ConflictModel{
			Date:      c.Date.Format(domain.DateFormat),
			Weekday:   c.Weekday.String(),
			StartTime: c.Interval.Start.String(),
			EndTime:   c.Interval.End.String(),
			Label:     c.Label,
		}
	}
	return out
}

package request_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salasct/CT-RoomAllocationService/internal/calendar"
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
	roomsService "github.com/salasct/CT-RoomAllocationService/internal/service/rooms"
	"github.com/salasct/CT-RoomAllocationService/pkg/ptr"
)

// UseCase use case обработки разовой заявки на аудиторию
type UseCase struct {
	registry RoomRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry RoomRegistry, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		logger:   logger,
	}
}

// Execute обрабатывает заявку. Заявка принимается, только если все
// запрошенные дни недели свободны; при любом пересечении она отклоняется
// целиком с полным списком конфликтов (ConflictError).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RequestBooking: room=%s range=%s..%s interval=%s label=%q",
		req.Room, req.StartDate.Format(domain.DateFormat), uc.endDate(req).Format(domain.DateFormat),
		interval, req.Label)

	// 2. Аудитория должна существовать в реестре
	_, store, err := uc.registry.Get(req.Room)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			uc.logger.Warn("RequestBooking: room %q not found", req.Room)
			return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, req.Room)
		}
		uc.logger.Error("RequestBooking: failed to get room %q: %v", req.Room, err)
		return nil, err
	}

	// 3. Определяем дни недели заявки
	days, err := uc.requestedWeekdays(req)
	if err != nil {
		uc.logger.Warn("RequestBooking: %v", err)
		return nil, err
	}

	// 4. Разворачиваем диапазон дат в конкретные занятые даты
	window := domain.NewTermWindow(req.StartDate, uc.endDate(req))
	dates := calendar.Expand(window, days)
	if len(dates) == 0 {
		uc.logger.Warn("RequestBooking: no dates in %s..%s match weekdays %v",
			req.StartDate.Format(domain.DateFormat), uc.endDate(req).Format(domain.DateFormat), days)
		return nil, ErrNoMatchingDates
	}

	// 5. Первая конкретная дата каждого дня недели становится датой
	// происхождения брони (и датой в отчете о конфликте)
	firstDate := make(map[domain.Weekday]time.Time)
	var effective []domain.Weekday
	for _, date := range dates {
		day, _ := domain.FromTimeWeekday(date.Weekday())
		if _, seen := firstDate[day]; !seen {
			firstDate[day] = date
			effective = append(effective, day)
		}
	}

	// 6. Кандидаты: одна бронь на каждый затронутый день недели
	bookings := make([]*domain.Booking, 0, len(effective))
	for _, day := range effective {
		bookings = append(bookings, &domain.Booking{
			ID:         uuid.NewString(),
			Weekday:    day,
			Interval:   interval,
			Label:      req.Label,
			OriginDate: ptr.Ptr(firstDate[day]),
		})
	}

	// 7. Проверка конфликтов и вставка одним атомарным шагом
	if conflicts, err := store.InsertBatch(bookings); err != nil {
		if errors.Is(err, occupancy.ErrConflict) {
			conflictList := uc.toConflicts(conflicts, firstDate)
			uc.logger.Warn("RequestBooking: room=%s rejected with %d conflict(s)", req.Room, len(conflictList))
			return nil, &ConflictError{Conflicts: conflictList}
		}
		uc.logger.Error("RequestBooking: insert failed for room=%s: %v", req.Room, err)
		return nil, err
	}

	booked := make([]BookedDay, len(bookings))
	for i, b := range bookings {
		booked[i] = BookedDay{
			ID:         b.ID,
			Weekday:    b.Weekday,
			OriginDate: *b.OriginDate,
			Interval:   b.Interval,
		}
	}

	uc.logger.Info("RequestBooking: room=%s accepted, %d booking(s) over %d date(s)",
		req.Room, len(booked), len(dates))

	return &Response{
		Room:     req.Room,
		Label:    req.Label,
		Bookings: booked,
		Dates:    dates,
	}, nil
}

// endDate возвращает конец диапазона: для заявки на один день это сама дата
func (uc *UseCase) endDate(req *Request) time.Time {
	if req.EndDate.IsZero() {
		return req.StartDate
	}
	return req.EndDate
}

// requestedWeekdays определяет дни недели заявки: для одного дня — день
// самой даты, для диапазона — запрошенное подмножество
func (uc *UseCase) requestedWeekdays(req *Request) ([]domain.Weekday, error) {
	if req.isMultiDay() {
		var days []domain.Weekday
		seen := make(map[domain.Weekday]struct{})
		for _, day := range req.Weekdays {
			if _, dup := seen[day]; dup {
				continue
			}
			seen[day] = struct{}{}
			days = append(days, day)
		}
		return days, nil
	}

	day, ok := domain.FromTimeWeekday(req.StartDate.Weekday())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWeekday, req.StartDate.Format(domain.DateFormat))
	}
	return []domain.Weekday{day}, nil
}

// toConflicts переводит конфликтующие брони в модель ответа, привязывая
// каждую к первой конкретной дате ее дня недели в диапазоне заявки
func (uc *UseCase) toConflicts(conflicts []domain.Booking, firstDate map[domain.Weekday]time.Time) []Conflict {
	out := make([]Conflict, len(conflicts))
	for i, b := range conflicts {
		out[i] = Conflict{
			Date:     firstDate[b.Weekday],
			Weekday:  b.Weekday,
			Interval: b.Interval,
			Label:    b.Label,
		}
	}
	return out
}

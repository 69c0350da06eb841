package ingest_allocations

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/salasct/CT-RoomAllocationService/internal/calendar"
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

// UseCase use case массовой загрузки распределения дисциплин в хранилища
// занятости при старте процесса
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

// Execute загружает записи в хранилища занятости.
// В хранилища попадают только записи со статусом ALOCADA. Плохая запись
// пропускается с предупреждением и не прерывает загрузку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Summary, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	summary := &Summary{}

	for i, record := range req.Records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		uc.ingestRecord(i, record, req.Term, summary)
	}

	uc.logger.Info("IngestAllocations: admitted=%d bookings=%d meetings=%d, skipped: status=%d room=%d time=%d weekdays=%d conflict=%d",
		summary.Admitted, summary.Bookings, summary.Meetings,
		summary.SkippedStatus, summary.SkippedUnknownRoom, summary.SkippedInvalidTime,
		summary.SkippedNoWeekdays, summary.SkippedConflict)

	return summary, nil
}

// ingestRecord обрабатывает одну запись выгрузки
func (uc *UseCase) ingestRecord(i int, record Record, term domain.TermWindow, summary *Summary) {
	// В хранилища допускаются только распределенные записи
	if strings.ToUpper(strings.TrimSpace(record.Status)) != domain.StatusAllocated {
		summary.SkippedStatus++
		return
	}

	_, store, err := uc.registry.Get(record.Room)
	if err != nil {
		uc.logger.Warn("IngestAllocations: record %d references unknown room %q, skipping", i, record.Room)
		summary.SkippedUnknownRoom++
		return
	}

	interval, err := parseInterval(record.StartTime, record.EndTime)
	if err != nil {
		uc.logger.Warn("IngestAllocations: record %d (%s): %v, skipping", i, record.Room, err)
		summary.SkippedInvalidTime++
		return
	}

	// Нераспознанный токен дня отбрасывается, остальные продолжают действовать
	var weekdays []domain.Weekday
	seen := make(map[domain.Weekday]struct{})
	for _, token := range record.WeekdayTokens {
		day, err := domain.ParseWeekday(token)
		if err != nil {
			uc.logger.Warn("IngestAllocations: record %d (%s): %v, dropping token", i, record.Room, err)
			summary.DroppedTokens++
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		weekdays = append(weekdays, day)
	}
	if len(weekdays) == 0 {
		summary.SkippedNoWeekdays++
		return
	}

	label := recordLabel(record)
	bookings := make([]*domain.Booking, 0, len(weekdays))
	for _, day := range weekdays {
		bookings = append(bookings, &domain.Booking{
			ID:       uuid.NewString(),
			Weekday:  day,
			Interval: interval,
			Label:    label,
		})
	}

	if conflicts, err := store.InsertBatch(bookings); err != nil {
		if errors.Is(err, occupancy.ErrConflict) {
			uc.logger.Warn("IngestAllocations: record %d (%s %s) overlaps %d existing booking(s), skipping",
				i, record.Room, interval, len(conflicts))
			summary.SkippedConflict++
			return
		}
		uc.logger.Error("IngestAllocations: record %d (%s): %v, skipping", i, record.Room, err)
		summary.SkippedConflict++
		return
	}

	summary.Admitted++
	summary.Bookings += len(bookings)
	summary.Meetings += len(calendar.Expand(term, weekdays))
}

// parseInterval нормализует границы интервала через общую цепочку
// парсинга времени
func parseInterval(start, end string) (domain.Interval, error) {
	from, err := types.ParseTimeOfDay(start)
	if err != nil {
		return domain.Interval{}, err
	}
	to, err := types.ParseTimeOfDay(end)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.NewInterval(from, to)
}

// recordLabel подпись брони в сетке: дисциплина и турма, с откатом на
// код и курс, когда выгрузка не заполнена
func recordLabel(record Record) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{record.Subject, record.Class} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		for _, p := range []string{record.Code, record.Course} {
			if s := strings.TrimSpace(p); s != "" {
				return s
			}
		}
		return "OCUPADA"
	}
	return strings.Join(parts, " ")
}

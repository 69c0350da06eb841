package request_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	roomsService "github.com/salasct/CT-RoomAllocationService/internal/service/rooms"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func clock(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newRegistry builds a registry with room CT-101 occupied on Monday
// 08:00-10:00, the baseline of most scenarios below.
func newRegistry(t *testing.T) *roomsService.Service {
	t.Helper()
	registry := roomsService.NewService(nopLogger{})
	require.NoError(t, registry.Register(domain.Room{Name: "CT-101", Capacity: 40}))

	_, store, err := registry.Get("CT-101")
	require.NoError(t, err)

	iv, err := domain.NewInterval(clock(t, "08:00"), clock(t, "10:00"))
	require.NoError(t, err)
	_, err = store.Insert(&domain.Booking{
		ID:       "fixed",
		Weekday:  domain.Monday,
		Interval: iv,
		Label:    "CALCULO I",
	})
	require.NoError(t, err)
	return registry
}

func TestExecute_SingleDayAccepted(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	// Monday 2026-03-02, right after the fixed class ends.
	resp, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		Start:     clock(t, "10:00"),
		End:       clock(t, "11:00"),
		Label:     "MONITORIA",
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.Monday, resp.Bookings[0].Weekday)
	assert.Equal(t, date(2026, time.March, 2), resp.Bookings[0].OriginDate)
	assert.NotEmpty(t, resp.Bookings[0].ID)
	assert.Equal(t, []time.Time{date(2026, time.March, 2)}, resp.Dates)

	_, store, err := registry.Get("CT-101")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestExecute_SingleDayConflict(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		Start:     clock(t, "09:00"),
		End:       clock(t, "11:00"),
		Label:     "MONITORIA",
	})
	require.ErrorIs(t, err, ErrConflictDetected)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)

	c := conflictErr.Conflicts[0]
	assert.Equal(t, date(2026, time.March, 2), c.Date)
	assert.Equal(t, domain.Monday, c.Weekday)
	assert.Equal(t, "08:00-10:00", c.Interval.String())
	assert.Equal(t, "CALCULO I", c.Label)

	// The rejected request must not change occupancy.
	_, store, err := registry.Get("CT-101")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestExecute_OtherWeekdayFree(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	// Tuesday 2026-03-03: the Monday class does not block it.
	resp, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 3),
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "PALESTRA",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.Tuesday, resp.Bookings[0].Weekday)
}

func TestExecute_SundayRejected(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	// 2026-03-01 is a Sunday: the weekly calendar has no such column.
	_, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 1),
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "EVENTO",
	})
	assert.ErrorIs(t, err, ErrUnsupportedWeekday)
}

func TestExecute_RoomNotFound(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-999",
		StartDate: date(2026, time.March, 2),
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "EVENTO",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_MultiDayAccepted(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	// Two weeks, Tuesday and Thursday only.
	resp, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 13),
		Weekdays:  []domain.Weekday{domain.Tuesday, domain.Thursday},
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "CURSO DE EXTENSAO",
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	byDay := map[domain.Weekday]BookedDay{}
	for _, b := range resp.Bookings {
		byDay[b.Weekday] = b
	}
	assert.Equal(t, date(2026, time.March, 3), byDay[domain.Tuesday].OriginDate)
	assert.Equal(t, date(2026, time.March, 5), byDay[domain.Thursday].OriginDate)

	assert.Equal(t, []time.Time{
		date(2026, time.March, 3),
		date(2026, time.March, 5),
		date(2026, time.March, 10),
		date(2026, time.March, 12),
	}, resp.Dates)
}

func TestExecute_MultiDayConflictRejectsWhole(t *testing.T) {
	registry := newRegistry(t)

	// Occupy Wednesday 10:00-12:00 so only that day of the request clashes.
	_, store, err := registry.Get("CT-101")
	require.NoError(t, err)
	iv, err := domain.NewInterval(clock(t, "10:00"), clock(t, "12:00"))
	require.NoError(t, err)
	_, err = store.Insert(&domain.Booking{
		ID:       "seminar",
		Weekday:  domain.Wednesday,
		Interval: iv,
		Label:    "SEMINARIO",
	})
	require.NoError(t, err)

	uc := NewUseCase(registry, nopLogger{})

	// Monday and Friday are free at 10:00-12:00 (the fixed class ends at
	// 10:00); the Wednesday clash must reject the whole request.
	_, err = uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 6),
		Weekdays:  []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		Start:     clock(t, "10:00"),
		End:       clock(t, "12:00"),
		Label:     "SEMANA ACADEMICA",
	})
	require.ErrorIs(t, err, ErrConflictDetected)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, domain.Wednesday, conflictErr.Conflicts[0].Weekday)
	assert.Equal(t, date(2026, time.March, 4), conflictErr.Conflicts[0].Date)
	assert.Equal(t, "SEMINARIO", conflictErr.Conflicts[0].Label)

	// Monday and Friday remain unbooked, nothing partially committed.
	assert.Equal(t, 2, store.Len())
	require.Len(t, store.Query(domain.Monday), 1)
	assert.Equal(t, "fixed", store.Query(domain.Monday)[0].ID)
	assert.Empty(t, store.Query(domain.Friday))
}

func TestExecute_NoMatchingDates(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	// Monday through Friday window, Saturday requested.
	_, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 6),
		Weekdays:  []domain.Weekday{domain.Saturday},
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "EVENTO",
	})
	assert.ErrorIs(t, err, ErrNoMatchingDates)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(newRegistry(t), nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{
			name: "missing room",
			req: &Request{
				StartDate: date(2026, time.March, 2),
				Start:     clock(t, "08:00"), End: clock(t, "10:00"), Label: "X",
			},
		},
		{
			name: "missing label",
			req: &Request{
				Room:      "CT-101",
				StartDate: date(2026, time.March, 2),
				Start:     clock(t, "08:00"), End: clock(t, "10:00"),
			},
		},
		{
			name: "missing start date",
			req: &Request{
				Room:  "CT-101",
				Start: clock(t, "08:00"), End: clock(t, "10:00"), Label: "X",
			},
		},
		{
			name: "inverted interval",
			req: &Request{
				Room:      "CT-101",
				StartDate: date(2026, time.March, 2),
				Start:     clock(t, "10:00"), End: clock(t, "08:00"), Label: "X",
			},
		},
		{
			name: "multi-day without weekdays",
			req: &Request{
				Room:      "CT-101",
				StartDate: date(2026, time.March, 2),
				EndDate:   date(2026, time.March, 13),
				Start:     clock(t, "08:00"), End: clock(t, "10:00"), Label: "X",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DuplicateWeekdaysCollapse(t *testing.T) {
	registry := newRegistry(t)
	uc := NewUseCase(registry, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Room:      "CT-101",
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 13),
		Weekdays:  []domain.Weekday{domain.Tuesday, domain.Tuesday, domain.Tuesday},
		Start:     clock(t, "08:00"),
		End:       clock(t, "10:00"),
		Label:     "CURSO",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

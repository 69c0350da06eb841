package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func interval(t *testing.T, start, end string) domain.Interval {
	t.Helper()
	from, err := types.ParseTimeOfDay(start)
	require.NoError(t, err)
	to, err := types.ParseTimeOfDay(end)
	require.NoError(t, err)
	iv, err := domain.NewInterval(from, to)
	require.NoError(t, err)
	return iv
}

func TestService_Register(t *testing.T) {
	svc := NewService(nopLogger{})

	require.NoError(t, svc.Register(domain.Room{Name: "CT-101", Capacity: 40}))

	room, store, err := svc.Get("CT-101")
	require.NoError(t, err)
	assert.Equal(t, "CT-101", room.Name)
	assert.Equal(t, 40, room.Capacity)
	assert.Equal(t, 0, store.Len())
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc := NewService(nopLogger{})

	require.NoError(t, svc.Register(domain.Room{Name: "CT-101", Capacity: 40}))
	err := svc.Register(domain.Room{Name: "CT-101", Capacity: 60})
	assert.ErrorIs(t, err, ErrDuplicateRoom)
}

func TestService_RegisterInvalid(t *testing.T) {
	svc := NewService(nopLogger{})

	assert.ErrorIs(t, svc.Register(domain.Room{Name: "", Capacity: 40}), ErrInvalidRoom)
	assert.ErrorIs(t, svc.Register(domain.Room{Name: "CT-101", Capacity: -1}), ErrInvalidRoom)
}

func TestService_GetUnknown(t *testing.T) {
	svc := NewService(nopLogger{})

	_, _, err := svc.Get("CT-999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_ListSorted(t *testing.T) {
	svc := NewService(nopLogger{})

	for _, name := range []string{"LAB-INFO-1", "CT-101", "AUDITORIO"} {
		require.NoError(t, svc.Register(domain.Room{Name: name, Capacity: 10}))
	}

	rooms := svc.List()
	require.Len(t, rooms, 3)
	assert.Equal(t, "AUDITORIO", rooms[0].Name)
	assert.Equal(t, "CT-101", rooms[1].Name)
	assert.Equal(t, "LAB-INFO-1", rooms[2].Name)
}

func TestService_Occupancy(t *testing.T) {
	svc := NewService(nopLogger{})
	require.NoError(t, svc.Register(domain.Room{Name: "CT-101", Capacity: 40}))

	_, store, err := svc.Get("CT-101")
	require.NoError(t, err)

	for _, b := range []*domain.Booking{
		{ID: "sat", Weekday: domain.Saturday, Interval: interval(t, "08:00", "11:30"), Label: "DESENHO"},
		{ID: "mon", Weekday: domain.Monday, Interval: interval(t, "07:00", "08:40"), Label: "CALCULO I"},
	} {
		_, err := store.Insert(b)
		require.NoError(t, err)
	}

	days, err := svc.Occupancy("CT-101")
	require.NoError(t, err)

	// Weekday order, empty days omitted.
	require.Len(t, days, 2)
	assert.Equal(t, domain.Monday, days[0].Day)
	assert.Equal(t, domain.Saturday, days[1].Day)
	require.Len(t, days[0].Bookings, 1)
	assert.Equal(t, "CALCULO I", days[0].Bookings[0].Label)
}

func TestService_TotalBookings(t *testing.T) {
	svc := NewService(nopLogger{})
	require.NoError(t, svc.Register(domain.Room{Name: "CT-101", Capacity: 40}))
	require.NoError(t, svc.Register(domain.Room{Name: "CT-102", Capacity: 40}))

	_, first, err := svc.Get("CT-101")
	require.NoError(t, err)
	_, second, err := svc.Get("CT-102")
	require.NoError(t, err)

	_, err = first.Insert(&domain.Booking{ID: "a", Weekday: domain.Monday, Interval: interval(t, "08:00", "10:00"), Label: "X"})
	require.NoError(t, err)
	_, err = second.Insert(&domain.Booking{ID: "b", Weekday: domain.Monday, Interval: interval(t, "08:00", "10:00"), Label: "Y"})
	require.NoError(t, err)

	assert.Equal(t, 2, svc.TotalBookings())
}

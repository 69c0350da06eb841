package get_room_occupancy

import (
	"github.com/salasct/CT-RoomAllocationService/internal/service/rooms/models"
)

// RoomsService интерфейс реестра аудиторий
type RoomsService interface {
	Occupancy(name string) ([]models.DayOccupancy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_rooms

import "github.com/salasct/CT-RoomAllocationService/internal/domain"

// RoomsService интерфейс реестра аудиторий
type RoomsService interface {
	List() []domain.Room
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

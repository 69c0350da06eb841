package ingest_allocations

import (
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
)

// RoomRegistry интерфейс реестра аудиторий
type RoomRegistry interface {
	Get(name string) (domain.Room, *occupancy.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

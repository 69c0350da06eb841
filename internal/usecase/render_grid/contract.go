package render_grid

import (
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/grid"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
)

// RoomRegistry интерфейс реестра аудиторий
type RoomRegistry interface {
	Get(name string) (domain.Room, *occupancy.Store, error)
}

// GridBuilder интерфейс построителя недельной сетки
type GridBuilder interface {
	Build(store *occupancy.Store) grid.Grid
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

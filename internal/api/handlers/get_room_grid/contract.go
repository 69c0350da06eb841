package get_room_grid

import (
	"context"

	renderGrid "github.com/salasct/CT-RoomAllocationService/internal/usecase/render_grid"
)

// RenderGridUseCase интерфейс use case построения сетки
type RenderGridUseCase interface {
	Execute(ctx context.Context, req *renderGrid.Request) (*renderGrid.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package render_grid

import (
	"context"
	"errors"
	"fmt"

	roomsService "github.com/salasct/CT-RoomAllocationService/internal/service/rooms"
)

// UseCase use case построения недельной сетки занятости аудитории
type UseCase struct {
	registry RoomRegistry
	builder  GridBuilder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry RoomRegistry, builder GridBuilder, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		builder:  builder,
		logger:   logger,
	}
}

// Execute строит снимок занятости аудитории. Сетка — чисто
// презентационный артефакт: данные занятости не мутируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Room == "" {
		return nil, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	room, store, err := uc.registry.Get(req.Room)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			uc.logger.Warn("RenderGrid: room %q not found", req.Room)
			return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, req.Room)
		}
		uc.logger.Error("RenderGrid: failed to get room %q: %v", req.Room, err)
		return nil, err
	}

	g := uc.builder.Build(store)
	uc.logger.Info("RenderGrid: room=%s rows=%d", req.Room, len(g.Slots))

	return &Response{Room: room, Grid: g}, nil
}

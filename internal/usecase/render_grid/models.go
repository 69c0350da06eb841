package render_grid

import (
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/grid"
)

// Request запрос недельной сетки занятости одной аудитории
type Request struct {
	Room string
}

// Response снимок занятости аудитории в виде сетки со слитыми ячейками
type Response struct {
	Room domain.Room
	Grid grid.Grid
}

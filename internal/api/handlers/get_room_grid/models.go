package get_room_grid

import (
	"github.com/salasct/CT-RoomAllocationService/internal/grid"
	renderGrid "github.com/salasct/CT-RoomAllocationService/internal/usecase/render_grid"
)

// SlotModel границы одной строки сетки
type SlotModel struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CellModel одна ячейка сетки после вертикального слияния
type CellModel struct {
	Label   string `json:"label,omitempty"`
	Span    int    `json:"span,omitempty"`
	Covered bool   `json:"covered,omitempty"`
}

// GridResponse HTTP-модель недельной сетки занятости
type GridResponse struct {
	Room     string        `json:"room"`
	Capacity int           `json:"capacity"`
	Days     []string      `json:"days"`
	Slots    []SlotModel   `json:"slots"`
	Cells    [][]CellModel `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *renderGrid.Response) *GridResponse {
	g := resp.Grid
	out := &GridResponse{
		Room:     resp.Room.Name,
		Capacity: resp.Room.Capacity,
		Days:     make([]string, len(g.Days)),
		Slots:    make([]SlotModel, len(g.Slots)),
		Cells:    make([][]CellModel, len(g.Cells)),
	}
	for i, day := range g.Days {
		out.Days[i] = day.String()
	}
	for i, slot := range g.Slots {
		out.Slots[i] = SlotModel{StartTime: slot.Start.String(), EndTime: slot.End.String()}
	}
	for row, cells := range g.Cells {
		out.Cells[row] = make([]CellModel, len(cells))
		for col, cell := range cells {
			out.Cells[row][col] = fromCell(cell)
		}
	}
	return out
}

func fromCell(c grid.Cell) CellModel {
	return CellModel{Label: c.Label, Span: c.Span, Covered: c.Covered}
}

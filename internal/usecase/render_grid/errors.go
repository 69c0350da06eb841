package render_grid

import "errors"

var (
	// ErrInvalidInput возвращается при пустом имени аудитории
	ErrInvalidInput = errors.New("render_grid: invalid input data")

	// ErrRoomNotFound возвращается, когда аудитория отсутствует в реестре
	ErrRoomNotFound = errors.New("render_grid: room not found")
)

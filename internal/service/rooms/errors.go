package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда аудитория отсутствует в реестре
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrDuplicateRoom возвращается при повторной регистрации аудитории
	ErrDuplicateRoom = errors.New("rooms: room already registered")

	// ErrInvalidRoom возвращается при регистрации аудитории без имени
	// или с отрицательной вместимостью
	ErrInvalidRoom = errors.New("rooms: invalid room")
)

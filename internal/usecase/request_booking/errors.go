package request_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrRoomNotFound возвращается, когда аудитория отсутствует в реестре
	ErrRoomNotFound = errors.New("request_booking: room not found")

	// ErrUnsupportedWeekday возвращается, когда дата заявки выпадает на
	// воскресенье: в шестидневной сетке для него нет колонки
	ErrUnsupportedWeekday = errors.New("request_booking: date falls on an unsupported weekday")

	// ErrNoMatchingDates возвращается, когда в диапазоне дат нет ни одного
	// дня из запрошенного набора дней недели
	ErrNoMatchingDates = errors.New("request_booking: no dates in range match the requested weekdays")

	// ErrConflictDetected возвращается, когда заявка пересекается с
	// существующей занятостью; полный список пересечений несет ConflictError
	ErrConflictDetected = errors.New("request_booking: requested interval conflicts with existing occupancy")
)

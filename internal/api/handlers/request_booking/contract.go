package request_booking

import (
	"context"

	requestBooking "github.com/salasct/CT-RoomAllocationService/internal/usecase/request_booking"
)

// RequestBookingUseCase интерфейс use case обработки заявки
type RequestBookingUseCase interface {
	Execute(ctx context.Context, req *requestBooking.Request) (*requestBooking.Response, error)
}

// Metrics учет принятых и отклоненных заявок
type Metrics interface {
	RecordRequestAccepted()
	RecordRequestRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

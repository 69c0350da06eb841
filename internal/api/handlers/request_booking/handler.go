package request_booking

import (
	"errors"
	"net/http"

	"github.com/salasct/CT-RoomAllocationService/internal/api/handlers"
	requestBooking "github.com/salasct/CT-RoomAllocationService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateOrTime  = "data ou horário em formato inválido"
	msgInvalidInput       = "dados da solicitação inválidos"
	msgRoomNotFound       = "sala não encontrada"
	msgConflict           = "a sala está ocupada no horário selecionado"
	msgUnsupportedWeekday = "a data selecionada cai em um domingo, sem coluna na grade"
	msgNoMatchingDates    = "nenhuma data do período corresponde aos dias selecionados"
)

type Handler struct {
	useCase RequestBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrConflictDetected):
			var conflictErr *requestBooking.ConflictError
			h.metrics.RecordRequestRejected("conflict")
			h.logger.Warn("POST /bookings - conflict: room=%s", req.Room)
			if errors.As(err, &conflictErr) {
				handlers.RespondJSON(w, http.StatusConflict, FromConflicts(msgConflict, conflictErr.Conflicts))
			} else {
				handlers.RespondError(w, http.StatusConflict, msgConflict)
			}

		case errors.Is(err, requestBooking.ErrRoomNotFound):
			h.metrics.RecordRequestRejected("unknown_room")
			h.logger.Warn("POST /bookings - room not found: room=%s", req.Room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, requestBooking.ErrUnsupportedWeekday):
			h.metrics.RecordRequestRejected("unsupported_weekday")
			h.logger.Warn("POST /bookings - unsupported weekday: room=%s date=%s", req.Room, req.Date)
			handlers.RespondBadRequest(w, msgUnsupportedWeekday)

		case errors.Is(err, requestBooking.ErrNoMatchingDates):
			h.metrics.RecordRequestRejected("no_matching_dates")
			h.logger.Warn("POST /bookings - no matching dates: room=%s", req.Room)
			handlers.RespondBadRequest(w, msgNoMatchingDates)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.metrics.RecordRequestRejected("invalid_input")
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.metrics.RecordRequestRejected("internal")
			h.logger.Error("POST /bookings - failed to process request: room=%s error=%v", req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.RecordRequestAccepted()
	h.logger.Info("POST /bookings - accepted: room=%s bookings=%d", req.Room, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

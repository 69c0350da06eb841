package get_room_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salasct/CT-RoomAllocationService/internal/api/handlers"
	renderGrid "github.com/salasct/CT-RoomAllocationService/internal/usecase/render_grid"
)

const (
	msgRoomNotFound = "sala não encontrada"
	msgRoomRequired = "nome da sala é obrigatório"
)

type Handler struct {
	useCase RenderGridUseCase
	logger  Logger
}

func NewHandler(useCase RenderGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{room}/grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]

	result, err := h.useCase.Execute(r.Context(), &renderGrid.Request{Room: room})
	if err != nil {
		switch {
		case errors.Is(err, renderGrid.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{room}/grid - room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, renderGrid.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{room}/grid - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgRoomRequired)

		default:
			h.logger.Error("GET /rooms/{room}/grid - failed: room=%s error=%v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package list_rooms

import (
	"net/http"

	"github.com/salasct/CT-RoomAllocationService/internal/api/handlers"
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// RoomModel HTTP-модель аудитории
type RoomModel struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// RoomsResponse список аудиторий
type RoomsResponse struct {
	Rooms []RoomModel `json:"rooms"`
}

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := h.service.List()

	resp := RoomsResponse{Rooms: make([]RoomModel, len(rooms))}
	for i, room := range rooms {
		resp.Rooms[i] = fromRoom(room)
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromRoom(room domain.Room) RoomModel {
	return RoomModel{Name: room.Name, Capacity: room.Capacity}
}

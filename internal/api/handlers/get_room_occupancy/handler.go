package get_room_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salasct/CT-RoomAllocationService/internal/api/handlers"
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	roomsService "github.com/salasct/CT-RoomAllocationService/internal/service/rooms"
	"github.com/salasct/CT-RoomAllocationService/internal/service/rooms/models"
)

const msgRoomNotFound = "sala não encontrada"

// BookingModel один занятый интервал
type BookingModel struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Label      string `json:"label"`
	OriginDate string `json:"originDate,omitempty"`
}

// DayModel занятость одного дня недели
type DayModel struct {
	Weekday  string         `json:"weekday"`
	Bookings []BookingModel `json:"bookings"`
}

// OccupancyResponse занятые интервалы аудитории по дням недели
type OccupancyResponse struct {
	Room string     `json:"room"`
	Days []DayModel `json:"days"`
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

// Handle GET /api/v1/rooms/{room}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]

	days, err := h.service.Occupancy(room)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{room}/occupancy - room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{room}/occupancy - failed: room=%s error=%v", room, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromOccupancy(room, days))
}

func fromOccupancy(room string, days []models.DayOccupancy) *OccupancyResponse {
	resp := &OccupancyResponse{Room: room, Days: make([]DayModel, len(days))}
	for i, day := range days {
		model := DayModel{
			Weekday:  day.Day.String(),
			Bookings: make([]BookingModel, len(day.Bookings)),
		}
		for j, b := range day.Bookings {
			model.Bookings[j] = BookingModel{
				StartTime: b.Interval.Start.String(),
				EndTime:   b.Interval.End.String(),
				Label:     b.Label,
			}
			if b.OriginDate != nil {
				model.Bookings[j].OriginDate = b.OriginDate.Format(domain.DateFormat)
			}
		}
		resp.Days[i] = model
	}
	return resp
}

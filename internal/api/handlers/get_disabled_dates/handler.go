package get_disabled_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

const (
	msgInvalidRoomID = "некорректный id номера"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{id}/disabled-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/disabled-dates - Invalid room id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	ranges, err := h.service.GetDisabledDates(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/disabled-dates - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/disabled-dates - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(roomID, ranges))
}

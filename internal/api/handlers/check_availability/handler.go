package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

const (
	msgInvalidRoomID = "некорректный id номера"
	msgInvalidDates  = "некорректные даты, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidRange  = "дата заезда должна быть раньше даты выезда"
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

// Handle GET /api/v1/rooms/{id}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	rng, err := domain.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	available, err := h.service.CheckAvailability(r.Context(), roomID, rng)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid range: room_id=%d, range=%s", roomID, rng)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(roomID, rng, available))
}

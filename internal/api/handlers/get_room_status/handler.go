package get_room_status

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

const (
	msgInvalidRoomID = "некорректный id номера"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/rooms/{id}/status?at=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/status - Invalid room id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Момент среза: параметр at или текущая дата
	at := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("at"); raw != "" {
		at, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/status - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	state, err := h.service.GetRoomStatus(r.Context(), roomID, at)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/status - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/status - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(roomID, at, state))
}

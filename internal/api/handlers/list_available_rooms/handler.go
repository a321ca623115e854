package list_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

const (
	msgInvalidDates      = "некорректные даты, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidRange      = "дата заезда должна быть раньше даты выезда"
	msgInvalidCapacity   = "некорректная вместимость"
	msgInvalidBuildingID = "некорректный id корпуса"
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

// Handle GET /api/v1/rooms/available?from=YYYY-MM-DD&to=YYYY-MM-DD&capacity=2&building_id=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rng, err := domain.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	query := domain.AvailabilityQuery{Range: rng}

	if raw := r.URL.Query().Get("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity <= 0 {
			h.logger.Warn("GET /rooms/available - Invalid capacity %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
		query.MinCapacity = capacity
	}

	if raw := r.URL.Query().Get("building_id"); raw != "" {
		buildingID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || buildingID <= 0 {
			h.logger.Warn("GET /rooms/available - Invalid building id %q", raw)
			handlers.RespondBadRequest(w, msgInvalidBuildingID)
			return
		}
		query.BuildingID = &buildingID
	}

	rooms, err := h.service.ListAvailableRooms(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /rooms/available - Invalid range: %s", rng)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /rooms/available - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(query, rooms))
}

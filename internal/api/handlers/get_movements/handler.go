package get_movements

import (
	"errors"
	"net/http"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

const (
	msgInvalidDates = "некорректные даты, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidRange = "начало периода должно быть раньше конца"
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

// Handle GET /api/v1/reports/movements?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := domain.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /reports/movements - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	movements, err := h.service.Movements(r.Context(), window.Start, window.End)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /reports/movements - Invalid window: %s", window)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /reports/movements - Failed: window=%s, error=%v", window, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(movements))
}

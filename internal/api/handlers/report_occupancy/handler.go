package report_occupancy

import (
	"net/http"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/reports/occupancy?at=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	at := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reports/occupancy - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		at = parsed
	}

	snapshot, err := h.service.ReportOccupancy(r.Context(), at)
	if err != nil {
		h.logger.Error("GET /reports/occupancy - Failed: at=%s, error=%v", at.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(snapshot))
}

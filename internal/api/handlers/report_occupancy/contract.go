package report_occupancy

import (
	"context"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

type AvailabilityService interface {
	ReportOccupancy(ctx context.Context, at time.Time) (*domain.OccupancySnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_disabled_dates

import (
	"context"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

type AvailabilityService interface {
	GetDisabledDates(ctx context.Context, roomID int64) ([]domain.DateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

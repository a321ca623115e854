package check_availability

import (
	"context"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, roomID int64, rng domain.DateRange) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_movements

import (
	"context"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

type AvailabilityService interface {
	Movements(ctx context.Context, from, to time.Time) (*availability.Movements, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

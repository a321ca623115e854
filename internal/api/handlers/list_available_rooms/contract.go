package list_available_rooms

import (
	"context"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

type AvailabilityService interface {
	ListAvailableRooms(ctx context.Context, query domain.AvailabilityQuery) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

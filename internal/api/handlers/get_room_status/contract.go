package get_room_status

import (
	"context"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

type AvailabilityService interface {
	GetRoomStatus(ctx context.Context, roomID int64, at time.Time) (domain.RoomState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_room_status

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// RoomStatusResponse HTTP response model
type RoomStatusResponse struct {
	RoomID int64  `json:"roomId"`
	At     string `json:"at"`
	Status string `json:"status"`
}

func toResponse(roomID int64, at time.Time, state domain.RoomState) *RoomStatusResponse {
	return &RoomStatusResponse{
		RoomID: roomID,
		At:     at.Format(domain.DateFormat),
		Status: string(state),
	}
}

package check_availability

import "github.com/NPaugust/Femida-sub000/internal/domain"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Available bool   `json:"available"`
}

func toResponse(roomID int64, rng domain.DateRange, available bool) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    roomID,
		From:      rng.Start.Format(domain.DateFormat),
		To:        rng.End.Format(domain.DateFormat),
		Available: available,
	}
}

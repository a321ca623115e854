package get_disabled_dates

import "github.com/NPaugust/Femida-sub000/internal/domain"

// BusyRange занятый период в календаре номера
type BusyRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DisabledDatesResponse HTTP response model
type DisabledDatesResponse struct {
	RoomID int64       `json:"roomId"`
	Busy   []BusyRange `json:"busy"`
}

func toResponse(roomID int64, ranges []domain.DateRange) *DisabledDatesResponse {
	busy := make([]BusyRange, len(ranges))
	for i, rng := range ranges {
		busy[i] = BusyRange{
			From: rng.Start.Format(domain.DateFormat),
			To:   rng.End.Format(domain.DateFormat),
		}
	}
	return &DisabledDatesResponse{RoomID: roomID, Busy: busy}
}

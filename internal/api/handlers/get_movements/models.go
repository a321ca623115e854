package get_movements

import (
	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

// MovementResponse одна запись о заезде или выезде
type MovementResponse struct {
	BookingID   int64  `json:"bookingId"`
	RoomID      int64  `json:"roomId"`
	GuestID     int64  `json:"guestId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	PeopleCount int    `json:"peopleCount"`
}

// MovementsResponse HTTP response model
type MovementsResponse struct {
	From       string              `json:"from"`
	To         string              `json:"to"`
	Arrivals   []*MovementResponse `json:"arrivals"`
	Departures []*MovementResponse `json:"departures"`
}

func toMovements(bookings []*domain.Booking) []*MovementResponse {
	result := make([]*MovementResponse, len(bookings))
	for i, b := range bookings {
		result[i] = &MovementResponse{
			BookingID:   b.ID,
			RoomID:      b.RoomID,
			GuestID:     b.GuestID,
			CheckIn:     b.Stay.Start.Format(domain.DateFormat),
			CheckOut:    b.Stay.End.Format(domain.DateFormat),
			PeopleCount: b.PeopleCount,
		}
	}
	return result
}

func toResponse(m *availability.Movements) *MovementsResponse {
	return &MovementsResponse{
		From:       m.From.Format(domain.DateFormat),
		To:         m.To.Format(domain.DateFormat),
		Arrivals:   toMovements(m.Arrivals),
		Departures: toMovements(m.Departures),
	}
}

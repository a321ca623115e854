package get_booking

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	RoomID             int64   `json:"roomId"`
	GuestID            int64   `json:"guestId"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	PeopleCount        int     `json:"peopleCount"`
	Status             string  `json:"status"`
	Comments           *string `json:"comments,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	response := &BookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		GuestID:            resp.GuestID,
		CheckIn:            resp.CheckIn.Format(domain.DateFormat),
		CheckOut:           resp.CheckOut.Format(domain.DateFormat),
		PeopleCount:        resp.PeopleCount,
		Status:             resp.Status,
		Comments:           resp.Comments,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		response.CancelledAt = &cancelledAt
	}
	return response
}

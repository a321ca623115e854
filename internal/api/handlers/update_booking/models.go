package update_booking

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	updateBooking "github.com/NPaugust/Femida-sub000/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model.
// Отсутствующие поля не изменяются.
type UpdateBookingRequest struct {
	RoomID      *int64  `json:"roomId,omitempty"`
	CheckIn     *string `json:"checkIn,omitempty"`  // "2025-10-15"
	CheckOut    *string `json:"checkOut,omitempty"` // "2025-10-18"
	PeopleCount *int    `json:"peopleCount,omitempty"`
	Comments    *string `json:"comments,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	GuestID     int64   `json:"guestId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Nights      int     `json:"nights"`
	PeopleCount int     `json:"peopleCount"`
	Status      string  `json:"status"`
	Comments    *string `json:"comments,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ConflictResponse HTTP модель ответа 409 с деталями пересечений
type ConflictResponse struct {
	Error     string            `json:"error"`
	RoomID    int64             `json:"roomId"`
	Conflicts []ConflictingStay `json:"conflicts"`
}

// ConflictingStay одно мешающее бронирование
type ConflictingStay struct {
	BookingID int64  `json:"bookingId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:   bookingID,
		RoomID:      r.RoomID,
		PeopleCount: r.PeopleCount,
		Comments:    r.Comments,
	}

	if r.CheckIn != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckIn)
		if err != nil {
			return nil, err
		}
		req.CheckIn = &checkIn
	}

	if r.CheckOut != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOut)
		if err != nil {
			return nil, err
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		GuestID:     resp.GuestID,
		CheckIn:     resp.CheckIn.Format(domain.DateFormat),
		CheckOut:    resp.CheckOut.Format(domain.DateFormat),
		Nights:      resp.Nights,
		PeopleCount: resp.PeopleCount,
		Status:      resp.Status,
		Comments:    resp.Comments,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует domain конфликт в HTTP модель
func FromConflictError(message string, conflictErr *domain.ConflictError) *ConflictResponse {
	conflicts := make([]ConflictingStay, len(conflictErr.Conflicts))
	for i, c := range conflictErr.Conflicts {
		conflicts[i] = ConflictingStay{
			BookingID: c.BookingID,
			CheckIn:   c.Stay.Start.Format(domain.DateFormat),
			CheckOut:  c.Stay.End.Format(domain.DateFormat),
		}
	}
	return &ConflictResponse{
		Error:     message,
		RoomID:    conflictErr.RoomID,
		Conflicts: conflicts,
	}
}

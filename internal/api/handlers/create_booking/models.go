package create_booking

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	createBooking "github.com/NPaugust/Femida-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID      int64   `json:"roomId"`
	GuestID     int64   `json:"guestId"`
	CheckIn     string  `json:"checkIn"`  // "2025-10-15"
	CheckOut    string  `json:"checkOut"` // "2025-10-18"
	PeopleCount int     `json:"peopleCount"`
	Comments    *string `json:"comments,omitempty"`
	CreatedBy   *int64  `json:"createdBy,omitempty"`
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:      r.RoomID,
		GuestID:     r.GuestID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		PeopleCount: r.PeopleCount,
		Comments:    r.Comments,
		CreatedBy:   r.CreatedBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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

package models

import (
	"fmt"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
type BookingResponse struct {
	ID          int64
	RoomID      int64
	GuestID     int64
	CheckIn     time.Time
	CheckOut    time.Time
	PeopleCount int
	Status      string

	Comments           *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedBy          *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// ListBookingsRequest запрос истории бронирований с фильтрацией
type ListBookingsRequest struct {
	RoomID          *int64
	BuildingID      *int64
	GuestID         *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		GuestID:            b.GuestID,
		CheckIn:            b.Stay.Start,
		CheckOut:           b.Stay.End,
		PeopleCount:        b.PeopleCount,
		Status:             string(b.Status),
		Comments:           b.Comments,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusActive, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(status), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", status)
	}
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:          r.RoomID,
		BuildingID:      r.BuildingID,
		GuestID:         r.GuestID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

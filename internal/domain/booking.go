package domain

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a guest's stay in a room
type Booking struct {
	ID          int64
	RoomID      int64
	GuestID     int64
	Stay        DateRange // [check-in, check-out)
	PeopleCount int
	Status      BookingStatus

	Comments           *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedBy          *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict checks
// and occupancy. Cancelled and completed bookings are history only.
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeUpdated returns true if the stay range can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusActive
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID          *int64         // Фильтр по номеру (опционально)
	BuildingID      *int64         // Фильтр по корпусу (опционально)
	StartDate       *time.Time     // Начало периода: заезд не раньше (опционально)
	EndDate         *time.Time     // Конец периода: заезд не позже (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	GuestID         *int64         // Фильтр по гостю (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые
}

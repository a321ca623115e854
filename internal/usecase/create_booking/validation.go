package create_booking

import (
	"fmt"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// truncateToDay приводит момент времени к полуночи UTC соответствующего дня
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.PeopleCount <= 0 {
		return fmt.Errorf("%w: peopleCount must be positive", ErrInvalidInput)
	}

	return nil
}

// validateRoom проверяет, что номер может принять бронирование
func validateRoom(room *domain.Room, peopleCount int) error {
	if !room.IsActive {
		return ErrRoomInactive
	}

	if room.IsUnderMaintenance() {
		return ErrRoomUnderMaintenance
	}

	if peopleCount > room.Capacity {
		return fmt.Errorf("%w: %d people, capacity %d", ErrCapacityExceeded, peopleCount, room.Capacity)
	}

	return nil
}

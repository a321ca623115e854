package update_booking

import (
	"fmt"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn != nil && req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn must not be zero", ErrInvalidInput)
	}

	if req.CheckOut != nil && req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut must not be zero", ErrInvalidInput)
	}

	if req.PeopleCount != nil && *req.PeopleCount <= 0 {
		return fmt.Errorf("%w: peopleCount must be positive", ErrInvalidInput)
	}

	if req.RoomID == nil && req.CheckIn == nil && req.CheckOut == nil &&
		req.PeopleCount == nil && req.Comments == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
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

package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingNotEditable возвращается, когда бронирование нельзя изменить
	// (отменено или завершено)
	ErrBookingNotEditable = errors.New("update_booking: booking cannot be updated")

	// ErrRoomNotFound возвращается, когда целевой номер не найден
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrRoomUnderMaintenance возвращается, когда целевой номер на ремонте
	ErrRoomUnderMaintenance = errors.New("update_booking: room is under maintenance")

	// ErrRoomInactive возвращается, когда целевой номер выведен из эксплуатации
	ErrRoomInactive = errors.New("update_booking: room is not active")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrCapacityExceeded = errors.New("update_booking: people count exceeds room capacity")

	// ErrInvalidRange возвращается при некорректном периоде проживания
	ErrInvalidRange = errors.New("update_booking: invalid stay range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnderMaintenance возвращается, когда номер на ремонте
	ErrRoomUnderMaintenance = errors.New("create_booking: room is under maintenance")

	// ErrRoomInactive возвращается, когда номер выведен из эксплуатации
	ErrRoomInactive = errors.New("create_booking: room is not active")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrCapacityExceeded = errors.New("create_booking: people count exceeds room capacity")

	// ErrInvalidRange возвращается при некорректном периоде проживания
	// (заезд не раньше выезда, в том числе нулевая длительность)
	ErrInvalidRange = errors.New("create_booking: invalid stay range")

	// ErrDateInPast возвращается, когда дата заезда раньше текущей даты
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

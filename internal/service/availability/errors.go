package availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат (start >= end)
	// Нулевой по длине период проживания отклоняется до любых проверок конфликтов
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrRoomNotFound возвращается, когда номер не найден в снапшоте
	ErrRoomNotFound = errors.New("availability: room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

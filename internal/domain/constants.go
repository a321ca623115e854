package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при проверке конфликтов и подсчёте занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

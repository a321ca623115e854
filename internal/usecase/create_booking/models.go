package create_booking

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID      int64     // ID номера
	GuestID     int64     // ID гостя
	CheckIn     time.Time // Дата заезда (без времени)
	CheckOut    time.Time // Дата выезда (без времени)
	PeopleCount int       // Количество проживающих
	Comments    *string   // Комментарий (опционально)
	CreatedBy   *int64    // ID сотрудника, создавшего бронь (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	RoomID      int64
	GuestID     int64
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	PeopleCount int
	Status      string
	Comments    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		RoomID:      b.RoomID,
		GuestID:     b.GuestID,
		CheckIn:     b.Stay.Start,
		CheckOut:    b.Stay.End,
		Nights:      b.Stay.Nights(),
		PeopleCount: b.PeopleCount,
		Status:      string(b.Status),
		Comments:    b.Comments,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

package update_booking

import (
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// Request модель запроса на изменение бронирования.
// Nil-поля означают "оставить без изменений".
type Request struct {
	BookingID   int64      // ID бронирования
	RoomID      *int64     // Новый номер (опционально)
	CheckIn     *time.Time // Новая дата заезда (опционально)
	CheckOut    *time.Time // Новая дата выезда (опционально)
	PeopleCount *int       // Новое количество проживающих (опционально)
	Comments    *string    // Новый комментарий (опционально)
}

// Response модель ответа с обновленным бронированием
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

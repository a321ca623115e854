package domain

import "time"

// RoomClass represents the class of a room
type RoomClass string

const (
	ClassStandard RoomClass = "standard"
	ClassSemiLux  RoomClass = "semi_lux"
	ClassLux      RoomClass = "lux"
	ClassVIP      RoomClass = "vip"
)

// RoomStatus is the stored service status of a room, maintained by the
// room administration workflow. It is independent of bookings: a room
// marked for repair stays under maintenance no matter what is booked.
type RoomStatus string

const (
	RoomStatusFree   RoomStatus = "free"
	RoomStatusRepair RoomStatus = "repair"
)

// Room represents a bookable unit in a building
type Room struct {
	ID          int64
	BuildingID  int64
	Number      string
	Class       RoomClass
	Capacity    int
	Status      RoomStatus
	Description string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnderMaintenance returns true if the room is marked for repair
func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomStatusRepair
}

// RoomsFilter фильтр для выборки номеров
type RoomsFilter struct {
	BuildingID  *int64 // Фильтр по корпусу (опционально)
	MinCapacity *int   // Минимальная вместимость (опционально)
	OnlyActive  bool   // Только действующие номера
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoomState(t *testing.T) {
	freeRoom := &Room{ID: 101, BuildingID: 1, Number: "101", Capacity: 2, Status: RoomStatusFree, IsActive: true}
	repairRoom := &Room{ID: 102, BuildingID: 1, Number: "102", Capacity: 2, Status: RoomStatusRepair, IsActive: true}

	bookings := []*Booking{
		activeBooking(1, 101, day(2024, 6, 10), day(2024, 6, 15)),
		activeBooking(2, 102, day(2024, 6, 10), day(2024, 6, 15)),
	}

	cancelled := activeBooking(3, 101, day(2024, 7, 1), day(2024, 7, 5))
	cancelled.Status = StatusCancelled

	tests := []struct {
		name     string
		room     *Room
		bookings []*Booking
		at       time.Time
		want     RoomState
	}{
		{
			name:     "occupied during stay",
			room:     freeRoom,
			bookings: bookings,
			at:       day(2024, 6, 12),
			want:     StateOccupied,
		},
		{
			name:     "occupied on check-in day",
			room:     freeRoom,
			bookings: bookings,
			at:       day(2024, 6, 10),
			want:     StateOccupied,
		},
		{
			name:     "free on check-out day",
			room:     freeRoom,
			bookings: bookings,
			at:       day(2024, 6, 15),
			want:     StateFree,
		},
		{
			name:     "free outside any stay",
			room:     freeRoom,
			bookings: bookings,
			at:       day(2024, 8, 1),
			want:     StateFree,
		},
		{
			name:     "maintenance wins over active booking",
			room:     repairRoom,
			bookings: bookings,
			at:       day(2024, 6, 12),
			want:     StateUnderMaintenance,
		},
		{
			name:     "maintenance without bookings",
			room:     repairRoom,
			bookings: nil,
			at:       day(2024, 8, 1),
			want:     StateUnderMaintenance,
		},
		{
			name:     "cancelled booking does not occupy",
			room:     freeRoom,
			bookings: []*Booking{cancelled},
			at:       day(2024, 7, 3),
			want:     StateFree,
		},
		{
			name:     "no bookings at all",
			room:     freeRoom,
			bookings: nil,
			at:       day(2024, 6, 12),
			want:     StateFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRoomState(tt.room, tt.bookings, tt.at))
		})
	}
}

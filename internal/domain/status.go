package domain

import "time"

// RoomState is the derived display state of a room at a reference instant.
// Unlike RoomStatus it is never stored: it is recomputed from the maintenance
// flag and the room's active bookings on every query.
type RoomState string

const (
	StateFree             RoomState = "free"
	StateOccupied         RoomState = "occupied"
	StateUnderMaintenance RoomState = "under_maintenance"
)

// ResolveRoomState derives the state of a room at the given instant.
//
// Precedence:
//  1. A room marked for repair is under maintenance regardless of bookings.
//  2. A room with an active booking whose stay contains the instant is occupied.
//  3. Otherwise the room is free.
//
// The reference instant is always explicit; callers pass the current time in
// production and fixed instants in tests.
func ResolveRoomState(room *Room, bookings []*Booking, at time.Time) RoomState {
	if room.IsUnderMaintenance() {
		return StateUnderMaintenance
	}

	for _, b := range bookings {
		if b.RoomID != room.ID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Stay.Contains(at) {
			return StateOccupied
		}
	}

	return StateFree
}

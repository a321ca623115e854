package domain

import (
	"fmt"
	"sort"
	"strings"
)

// AvailabilityQuery is a transient request for rooms available for a stay
type AvailabilityQuery struct {
	Range       DateRange
	MinCapacity int
	BuildingID  *int64 // Optional building filter
}

// Conflict describes one existing booking that blocks a candidate stay
type Conflict struct {
	BookingID int64
	Stay      DateRange
}

// ConflictError is returned when a candidate stay overlaps existing active
// bookings for the same room. It names every conflicting booking so callers
// can show "room busy from X to Y" instead of a bare rejection.
type ConflictError struct {
	RoomID    int64
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return fmt.Sprintf("room %d is already booked for the requested dates", e.RoomID)
	}
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = fmt.Sprintf("booking %d (%s)", c.BookingID, c.Stay)
	}
	return fmt.Sprintf("room %d is already booked: %s", e.RoomID, strings.Join(parts, ", "))
}

// BookingIDs returns the ids of all conflicting bookings
func (e *ConflictError) BookingIDs() []int64 {
	ids := make([]int64, len(e.Conflicts))
	for i, c := range e.Conflicts {
		ids[i] = c.BookingID
	}
	return ids
}

// FindConflicts returns the active bookings for roomID whose stay strictly
// overlaps rng, per the half-open rule: a booking ending on the day the
// candidate starts is not a conflict (same-day turnover).
//
// excludeID removes one booking from the comparison set; pass the booking's
// own id when re-validating an edited booking, 0 otherwise.
func FindConflicts(roomID int64, rng DateRange, bookings []*Booking, excludeID int64) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if rng.Overlaps(b.Stay) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}

// HasConflict reports whether a candidate stay overlaps any existing active
// booking for the room
func HasConflict(roomID int64, rng DateRange, bookings []*Booking) bool {
	return len(FindConflicts(roomID, rng, bookings, 0)) > 0
}

// NewConflictError builds a ConflictError from the conflicting bookings
func NewConflictError(roomID int64, conflicting []*Booking) *ConflictError {
	conflicts := make([]Conflict, len(conflicting))
	for i, b := range conflicting {
		conflicts[i] = Conflict{BookingID: b.ID, Stay: b.Stay}
	}
	return &ConflictError{RoomID: roomID, Conflicts: conflicts}
}

// FilterAvailableRooms returns the rooms that can host the queried stay:
// sufficient capacity, not under maintenance, active, matching the optional
// building filter and free of conflicts over the requested range.
// The result is sorted by room id so output is deterministic.
func FilterAvailableRooms(query AvailabilityQuery, rooms []*Room, bookings []*Booking) []*Room {
	available := make([]*Room, 0)

	for _, room := range rooms {
		if !room.IsActive {
			continue
		}
		if room.IsUnderMaintenance() {
			continue
		}
		if room.Capacity < query.MinCapacity {
			continue
		}
		if query.BuildingID != nil && room.BuildingID != *query.BuildingID {
			continue
		}
		if HasConflict(room.ID, query.Range, bookings) {
			continue
		}
		available = append(available, room)
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].ID < available[j].ID
	})

	return available
}

package domain

import "time"

// BuildingOccupancy per-building slice of an occupancy snapshot
type BuildingOccupancy struct {
	Total            int
	Occupied         int
	Free             int
	UnderMaintenance int
}

// OccupancySnapshot is a point-in-time aggregate of room states across the
// inventory. It is never persisted; it is recomputed on demand.
type OccupancySnapshot struct {
	At               time.Time
	Total            int
	Occupied         int
	Free             int
	UnderMaintenance int
	ByBuilding       map[int64]BuildingOccupancy
}

// OccupancyRate returns the occupied share as a fraction in [0, 1].
// An empty inventory yields 0, not an error.
func (s *OccupancySnapshot) OccupancyRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Occupied) / float64(s.Total)
}

// BuildOccupancySnapshot computes room states at the reference instant and
// aggregates counts, overall and per building
func BuildOccupancySnapshot(rooms []*Room, bookings []*Booking, at time.Time) *OccupancySnapshot {
	snapshot := &OccupancySnapshot{
		At:         at,
		ByBuilding: make(map[int64]BuildingOccupancy),
	}

	for _, room := range rooms {
		state := ResolveRoomState(room, bookings, at)

		building := snapshot.ByBuilding[room.BuildingID]
		building.Total++
		snapshot.Total++

		switch state {
		case StateOccupied:
			snapshot.Occupied++
			building.Occupied++
		case StateUnderMaintenance:
			snapshot.UnderMaintenance++
			building.UnderMaintenance++
		default:
			snapshot.Free++
			building.Free++
		}

		snapshot.ByBuilding[room.BuildingID] = building
	}

	return snapshot
}

// ArrivalsInWindow returns the active bookings whose check-in falls within
// [from, to)
func ArrivalsInWindow(bookings []*Booking, from, to time.Time) []*Booking {
	window := DateRange{Start: from, End: to}
	arrivals := make([]*Booking, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if window.Contains(b.Stay.Start) {
			arrivals = append(arrivals, b)
		}
	}

	return arrivals
}

// DeparturesInWindow returns the active bookings whose check-out falls within
// [from, to)
func DeparturesInWindow(bookings []*Booking, from, to time.Time) []*Booking {
	window := DateRange{Start: from, End: to}
	departures := make([]*Booking, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if window.Contains(b.Stay.End) {
			departures = append(departures, b)
		}
	}

	return departures
}

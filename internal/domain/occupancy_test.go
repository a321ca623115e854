package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOccupancySnapshot(t *testing.T) {
	rooms := []*Room{
		{ID: 1, BuildingID: 1, Number: "101", Capacity: 2, Status: RoomStatusFree, IsActive: true},
		{ID: 2, BuildingID: 1, Number: "102", Capacity: 2, Status: RoomStatusFree, IsActive: true},
		{ID: 3, BuildingID: 2, Number: "201", Capacity: 2, Status: RoomStatusRepair, IsActive: true},
		{ID: 4, BuildingID: 2, Number: "202", Capacity: 2, Status: RoomStatusFree, IsActive: true},
	}

	bookings := []*Booking{
		activeBooking(1, 1, day(2024, 6, 10), day(2024, 6, 15)),
		activeBooking(2, 4, day(2024, 6, 12), day(2024, 6, 14)),
	}

	snapshot := BuildOccupancySnapshot(rooms, bookings, day(2024, 6, 12))
	require.NotNil(t, snapshot)

	assert.Equal(t, 4, snapshot.Total)
	assert.Equal(t, 2, snapshot.Occupied)
	assert.Equal(t, 1, snapshot.Free)
	assert.Equal(t, 1, snapshot.UnderMaintenance)
	assert.InDelta(t, 0.5, snapshot.OccupancyRate(), 1e-9)

	// Разрез по корпусам
	require.Len(t, snapshot.ByBuilding, 2)
	assert.Equal(t, BuildingOccupancy{Total: 2, Occupied: 1, Free: 1}, snapshot.ByBuilding[1])
	assert.Equal(t, BuildingOccupancy{Total: 2, Occupied: 1, UnderMaintenance: 1}, snapshot.ByBuilding[2])
}

func TestBuildOccupancySnapshot_CountsSumToTotal(t *testing.T) {
	rooms := []*Room{
		{ID: 1, BuildingID: 1, Number: "101", Capacity: 2, Status: RoomStatusFree, IsActive: true},
		{ID: 2, BuildingID: 1, Number: "102", Capacity: 2, Status: RoomStatusRepair, IsActive: true},
		{ID: 3, BuildingID: 1, Number: "103", Capacity: 2, Status: RoomStatusFree, IsActive: true},
	}

	bookings := []*Booking{
		activeBooking(1, 1, day(2024, 6, 10), day(2024, 6, 15)),
	}

	snapshot := BuildOccupancySnapshot(rooms, bookings, day(2024, 6, 12))
	assert.Equal(t, snapshot.Total, snapshot.Occupied+snapshot.Free+snapshot.UnderMaintenance)
}

func TestOccupancySnapshot_OccupancyRate_EmptyInventory(t *testing.T) {
	snapshot := BuildOccupancySnapshot(nil, nil, day(2024, 6, 12))
	assert.Zero(t, snapshot.OccupancyRate())
}

func TestArrivalsInWindow(t *testing.T) {
	bookings := []*Booking{
		activeBooking(1, 101, day(2024, 6, 10), day(2024, 6, 15)),
		activeBooking(2, 102, day(2024, 6, 11), day(2024, 6, 13)),
		activeBooking(3, 103, day(2024, 6, 12), day(2024, 6, 14)),
	}

	cancelled := activeBooking(4, 104, day(2024, 6, 10), day(2024, 6, 12))
	cancelled.Status = StatusCancelled
	bookings = append(bookings, cancelled)

	// Окно [10, 12): заезды 10 и 11 июня, заезд 12-го уже за границей
	arrivals := ArrivalsInWindow(bookings, day(2024, 6, 10), day(2024, 6, 12))

	ids := make([]int64, 0, len(arrivals))
	for _, b := range arrivals {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestDeparturesInWindow(t *testing.T) {
	bookings := []*Booking{
		activeBooking(1, 101, day(2024, 6, 10), day(2024, 6, 15)),
		activeBooking(2, 102, day(2024, 6, 11), day(2024, 6, 13)),
		activeBooking(3, 103, day(2024, 6, 12), day(2024, 6, 14)),
	}

	// Окно [13, 15): выезды 13 и 14 июня, выезд 15-го за границей
	departures := DeparturesInWindow(bookings, day(2024, 6, 13), day(2024, 6, 15))

	ids := make([]int64, 0, len(departures))
	for _, b := range departures {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []int64{2, 3}, ids)
}

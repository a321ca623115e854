package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	roomRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeRoomRepo) List(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0, len(f.rooms))
	for _, room := range f.rooms {
		if filter.OnlyActive && !room.IsActive {
			continue
		}
		if filter.BuildingID != nil && room.BuildingID != *filter.BuildingID {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByRoomID(_ context.Context, roomID int64, includeInactive bool) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		if !includeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeRoomRepo, *fakeBookingRepo) {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, BuildingID: 1, Number: "101", Capacity: 2, Status: domain.RoomStatusFree, IsActive: true},
		102: {ID: 102, BuildingID: 1, Number: "102", Capacity: 4, Status: domain.RoomStatusFree, IsActive: true},
		103: {ID: 103, BuildingID: 2, Number: "201", Capacity: 2, Status: domain.RoomStatusRepair, IsActive: true},
	}}

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          1,
			RoomID:      101,
			GuestID:     10,
			Stay:        domain.NewDateRange(day(2024, 6, 10), day(2024, 6, 15)),
			PeopleCount: 2,
			Status:      domain.StatusActive,
		},
	}}

	return NewService(rooms, bookings, nopLogger{}), rooms, bookings
}

func TestService_GetRoomStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		roomID  int64
		at      time.Time
		want    domain.RoomState
		wantErr error
	}{
		{name: "occupied during stay", roomID: 101, at: day(2024, 6, 12), want: domain.StateOccupied},
		{name: "free on check-out day", roomID: 101, at: day(2024, 6, 15), want: domain.StateFree},
		{name: "maintenance overrides everything", roomID: 103, at: day(2024, 6, 12), want: domain.StateUnderMaintenance},
		{name: "unknown room", roomID: 999, at: day(2024, 6, 12), wantErr: ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := svc.GetRoomStatus(ctx, tt.roomID, tt.at)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestService_CheckAvailability(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("overlapping stay is unavailable", func(t *testing.T) {
		available, err := svc.CheckAvailability(ctx, 101, domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 17)))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("turnover day is available", func(t *testing.T) {
		available, err := svc.CheckAvailability(ctx, 101, domain.NewDateRange(day(2024, 6, 15), day(2024, 6, 20)))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("invalid range is rejected before conflict check", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, 101, domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 12)))
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, 999, domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 14)))
		require.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestService_ListAvailableRooms(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("excludes booked and maintenance rooms", func(t *testing.T) {
		rooms, err := svc.ListAvailableRooms(ctx, domain.AvailabilityQuery{
			Range: domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 14)),
		})
		require.NoError(t, err)

		ids := make([]int64, 0, len(rooms))
		for _, room := range rooms {
			ids = append(ids, room.ID)
		}
		assert.Equal(t, []int64{102}, ids)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		rooms, err := svc.ListAvailableRooms(ctx, domain.AvailabilityQuery{
			Range:       domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 14)),
			MinCapacity: 10,
		})
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := svc.ListAvailableRooms(ctx, domain.AvailabilityQuery{
			Range: domain.NewDateRange(day(2024, 6, 14), day(2024, 6, 12)),
		})
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestService_GetDisabledDates(t *testing.T) {
	svc, _, bookings := newTestService()
	ctx := context.Background()

	cancelled := &domain.Booking{
		ID:     2,
		RoomID: 101,
		Stay:   domain.NewDateRange(day(2024, 7, 1), day(2024, 7, 5)),
		Status: domain.StatusCancelled,
	}
	bookings.bookings = append(bookings.bookings, cancelled)

	ranges, err := svc.GetDisabledDates(ctx, 101)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, domain.NewDateRange(day(2024, 6, 10), day(2024, 6, 15)), ranges[0])
}

func TestService_ReportOccupancy(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	snapshot, err := svc.ReportOccupancy(ctx, day(2024, 6, 12))
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 1, snapshot.Occupied)
	assert.Equal(t, 1, snapshot.Free)
	assert.Equal(t, 1, snapshot.UnderMaintenance)
}

func TestService_Movements(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("arrivals and departures in window", func(t *testing.T) {
		movements, err := svc.Movements(ctx, day(2024, 6, 10), day(2024, 6, 11))
		require.NoError(t, err)
		require.Len(t, movements.Arrivals, 1)
		assert.Equal(t, int64(1), movements.Arrivals[0].ID)
		assert.Empty(t, movements.Departures)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := svc.Movements(ctx, day(2024, 6, 11), day(2024, 6, 10))
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestService_ValidateNewBooking(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("no conflicts", func(t *testing.T) {
		err := svc.ValidateNewBooking(ctx, BookingCandidate{
			RoomID: 101,
			Stay:   domain.NewDateRange(day(2024, 6, 15), day(2024, 6, 20)),
		})
		require.NoError(t, err)
	})

	t.Run("conflict carries booking details", func(t *testing.T) {
		err := svc.ValidateNewBooking(ctx, BookingCandidate{
			RoomID: 101,
			Stay:   domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 17)),
		})
		require.Error(t, err)

		var conflictErr *domain.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, int64(101), conflictErr.RoomID)
		assert.Equal(t, []int64{1}, conflictErr.BookingIDs())
	})

	t.Run("editing excludes own booking", func(t *testing.T) {
		err := svc.ValidateNewBooking(ctx, BookingCandidate{
			RoomID:           101,
			Stay:             domain.NewDateRange(day(2024, 6, 11), day(2024, 6, 14)),
			ExcludeBookingID: 1,
		})
		require.NoError(t, err)
	})

	t.Run("zero length stay rejected without conflict check", func(t *testing.T) {
		err := svc.ValidateNewBooking(ctx, BookingCandidate{
			RoomID: 101,
			Stay:   domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 12)),
		})
		require.ErrorIs(t, err, ErrInvalidRange)

		var conflictErr *domain.ConflictError
		assert.False(t, errors.As(err, &conflictErr))
	})

	t.Run("unknown room", func(t *testing.T) {
		err := svc.ValidateNewBooking(ctx, BookingCandidate{
			RoomID: 999,
			Stay:   domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 14)),
		})
		require.ErrorIs(t, err, ErrRoomNotFound)
	})
}

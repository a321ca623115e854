package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	bookingRepoPkg "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	roomRepoPkg "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
	"github.com/NPaugust/Femida-sub000/pkg/ptr"
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
		return nil, roomRepoPkg.ErrRoomNotFound
	}
	return room, nil
}

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	updateErr error
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepoPkg.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := *booking
	updated.UpdatedAt = day(2024, 6, 2)
	f.updated = &updated
	return &updated, nil
}

type fakeAvailabilitySvc struct {
	err           error
	lastCandidate availability.BookingCandidate
}

func (f *fakeAvailabilitySvc) ValidateNewBooking(_ context.Context, candidate availability.BookingCandidate) error {
	f.lastCandidate = candidate
	return f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	availSvc *fakeAvailabilitySvc
	txMgr    *fakeTxManager
}

func newFixture() *fixture {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, BuildingID: 1, Number: "101", Capacity: 2, Status: domain.RoomStatusFree, IsActive: true},
		102: {ID: 102, BuildingID: 1, Number: "102", Capacity: 4, Status: domain.RoomStatusFree, IsActive: true},
		103: {ID: 103, BuildingID: 1, Number: "103", Capacity: 2, Status: domain.RoomStatusRepair, IsActive: true},
	}}

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:          1,
			RoomID:      101,
			GuestID:     10,
			Stay:        domain.NewDateRange(day(2024, 6, 10), day(2024, 6, 15)),
			PeopleCount: 2,
			Status:      domain.StatusActive,
		},
		2: {
			ID:          2,
			RoomID:      101,
			GuestID:     11,
			Stay:        domain.NewDateRange(day(2024, 5, 1), day(2024, 5, 5)),
			PeopleCount: 2,
			Status:      domain.StatusCancelled,
		},
	}}

	availSvc := &fakeAvailabilitySvc{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(rooms, bookings, availSvc, txMgr, nopLogger{})

	return &fixture{uc: uc, rooms: rooms, bookings: bookings, availSvc: availSvc, txMgr: txMgr}
}

func TestUseCase_Execute_ShiftDates(t *testing.T) {
	f := newFixture()

	checkOut := day(2024, 6, 17)
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		CheckOut:  &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, day(2024, 6, 10), resp.CheckIn)
	assert.Equal(t, day(2024, 6, 17), resp.CheckOut)
	assert.Equal(t, 7, resp.Nights)

	// Собственное бронирование исключено из проверки конфликтов
	assert.Equal(t, int64(1), f.availSvc.lastCandidate.ExcludeBookingID)
	assert.Equal(t, 1, f.txMgr.calls)
}

func TestUseCase_Execute_MoveToAnotherRoom(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		RoomID:    ptr.Ptr(int64(102)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(102), resp.RoomID)
	assert.Equal(t, int64(102), f.availSvc.lastCandidate.RoomID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	checkIn := day(2024, 6, 15)
	checkOut := day(2024, 6, 10)

	tests := []struct {
		name    string
		req     *Request
		prepare func(*fixture)
		wantErr error
	}{
		{
			name:    "unknown booking",
			req:     &Request{BookingID: 999, PeopleCount: ptr.Ptr(1)},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "cancelled booking is not editable",
			req:     &Request{BookingID: 2, PeopleCount: ptr.Ptr(1)},
			wantErr: ErrBookingNotEditable,
		},
		{
			name:    "inverted dates",
			req:     &Request{BookingID: 1, CheckIn: &checkIn, CheckOut: &checkOut},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "move to unknown room",
			req:     &Request{BookingID: 1, RoomID: ptr.Ptr(int64(999))},
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "move to room under maintenance",
			req:     &Request{BookingID: 1, RoomID: ptr.Ptr(int64(103))},
			wantErr: ErrRoomUnderMaintenance,
		},
		{
			name:    "people count exceeds capacity",
			req:     &Request{BookingID: 1, PeopleCount: ptr.Ptr(5)},
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "empty request",
			req:     &Request{BookingID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name: "storage conflict on write",
			req:  &Request{BookingID: 1, PeopleCount: ptr.Ptr(1)},
			prepare: func(f *fixture) {
				f.bookings.updateErr = bookingRepoPkg.ErrBookingConflict
			},
			wantErr: nil, // проверяется через errors.As ниже
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.prepare != nil {
				tt.prepare(f)
			}

			_, err := f.uc.Execute(context.Background(), tt.req)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			var conflictErr *domain.ConflictError
			require.ErrorAs(t, err, &conflictErr)
		})
	}
}

func TestUseCase_Execute_ConflictFromAvailability(t *testing.T) {
	f := newFixture()
	f.availSvc.err = &domain.ConflictError{
		RoomID: 101,
		Conflicts: []domain.Conflict{
			{BookingID: 9, Stay: domain.NewDateRange(day(2024, 6, 16), day(2024, 6, 20))},
		},
	}

	checkOut := day(2024, 6, 18)
	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, CheckOut: &checkOut})
	require.Error(t, err)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []int64{9}, conflictErr.BookingIDs())
	assert.Nil(t, f.bookings.updated)
}

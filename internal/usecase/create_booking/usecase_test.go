package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	bookingRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	roomRepoPkg "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
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
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = day(2024, 6, 1)
	created.UpdatedAt = day(2024, 6, 1)
	f.created = &created
	return &created, nil
}

type fakeAvailabilitySvc struct {
	err           error
	lastCandidate availability.BookingCandidate
}

func (f *fakeAvailabilitySvc) ValidateNewBooking(_ context.Context, candidate availability.BookingCandidate) error {
	f.lastCandidate = candidate
	return f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	rooms     *fakeRoomRepo
	bookings  *fakeBookingRepo
	availSvc  *fakeAvailabilitySvc
	txManager *fakeTxManager
}

func newFixture() *fixture {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, BuildingID: 1, Number: "101", Capacity: 2, Status: domain.RoomStatusFree, IsActive: true},
		102: {ID: 102, BuildingID: 1, Number: "102", Capacity: 2, Status: domain.RoomStatusRepair, IsActive: true},
		103: {ID: 103, BuildingID: 1, Number: "103", Capacity: 2, Status: domain.RoomStatusFree, IsActive: false},
	}}
	bookings := &fakeBookingRepo{}
	availSvc := &fakeAvailabilitySvc{}
	txManager := &fakeTxManager{}

	uc := NewUseCase(rooms, bookings, availSvc, txManager, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: day(2024, 6, 1)}

	return &fixture{uc: uc, rooms: rooms, bookings: bookings, availSvc: availSvc, txManager: txManager}
}

func validRequest() *Request {
	return &Request{
		RoomID:      101,
		GuestID:     10,
		CheckIn:     day(2024, 6, 10),
		CheckOut:    day(2024, 6, 15),
		PeopleCount: 2,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(101), resp.RoomID)
	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, string(domain.StatusActive), resp.Status)

	// Проверка и запись прошли в одной транзакции
	assert.Equal(t, 1, f.txManager.calls)
	assert.Equal(t, int64(101), f.availSvc.lastCandidate.RoomID)
	assert.Zero(t, f.availSvc.lastCandidate.ExcludeBookingID)
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, domain.StatusActive, f.bookings.created.Status)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero room id",
			mutate:  func(r *Request) { r.RoomID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero guest id",
			mutate:  func(r *Request) { r.GuestID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero people count",
			mutate:  func(r *Request) { r.PeopleCount = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero check-in",
			mutate:  func(r *Request) { r.CheckIn = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "check-in equals check-out",
			mutate:  func(r *Request) { r.CheckOut = r.CheckIn },
			wantErr: ErrInvalidRange,
		},
		{
			name: "check-in after check-out",
			mutate: func(r *Request) {
				r.CheckIn = day(2024, 6, 15)
				r.CheckOut = day(2024, 6, 10)
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "check-in in the past",
			mutate: func(r *Request) {
				r.CheckIn = day(2024, 5, 20)
				r.CheckOut = day(2024, 5, 25)
			},
			wantErr: ErrDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)

			// До транзакции дело не дошло
			assert.Zero(t, f.txManager.calls)
		})
	}
}

func TestUseCase_Execute_RoomChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "unknown room",
			mutate:  func(r *Request) { r.RoomID = 999 },
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "room under maintenance",
			mutate:  func(r *Request) { r.RoomID = 102 },
			wantErr: ErrRoomUnderMaintenance,
		},
		{
			name:    "inactive room",
			mutate:  func(r *Request) { r.RoomID = 103 },
			wantErr: ErrRoomInactive,
		},
		{
			name:    "people count exceeds capacity",
			mutate:  func(r *Request) { r.PeopleCount = 5 },
			wantErr: ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookings.created)
		})
	}
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	t.Run("conflict from availability check", func(t *testing.T) {
		f := newFixture()
		f.availSvc.err = &domain.ConflictError{
			RoomID: 101,
			Conflicts: []domain.Conflict{
				{BookingID: 7, Stay: domain.NewDateRange(day(2024, 6, 12), day(2024, 6, 17))},
			},
		}

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.Error(t, err)

		var conflictErr *domain.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, []int64{7}, conflictErr.BookingIDs())
		assert.Nil(t, f.bookings.created)
	})

	t.Run("conflict caught by storage constraint", func(t *testing.T) {
		f := newFixture()
		f.bookings.createErr = bookingRepo.ErrBookingConflict

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.Error(t, err)

		var conflictErr *domain.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, int64(101), conflictErr.RoomID)
	})

	t.Run("invalid range from availability check", func(t *testing.T) {
		f := newFixture()
		f.availSvc.err = availability.ErrInvalidRange

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}

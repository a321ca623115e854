package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	bookingRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	"github.com/NPaugust/Femida-sub000/internal/service/bookings/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelReason    string
	updatedStatusID int64
	updatedStatus   domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatusID = id
	f.updatedStatus = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
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
			RoomID:      102,
			GuestID:     11,
			Stay:        domain.NewDateRange(day(2024, 5, 1), day(2024, 5, 5)),
			PeopleCount: 1,
			Status:      domain.StatusCompleted,
		},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("existing booking", func(t *testing.T) {
		booking, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
		assert.Equal(t, int64(101), booking.RoomID)
		assert.Equal(t, string(domain.StatusActive), booking.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 999)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("active only by default", func(t *testing.T) {
		result, err := svc.List(ctx, &models.ListBookingsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("history on request", func(t *testing.T) {
		result, err := svc.List(ctx, &models.ListBookingsRequest{IncludeInactive: true})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("unknown status in filter", func(t *testing.T) {
		bad := "nosuch"
		_, err := svc.List(ctx, &models.ListBookingsRequest{Status: &bad})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("active booking is cancelled with reason", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{Reason: "гость отменил поездку"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.cancelledID)
		assert.Equal(t, "гость отменил поездку", repo.cancelReason)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Cancel(ctx, 2, &models.CancelBookingRequest{Reason: "поздно"})
		require.ErrorIs(t, err, ErrCannotCancel)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Cancel(ctx, 999, &models.CancelBookingRequest{})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("active booking is completed", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Complete(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.updatedStatusID)
		assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	})

	t.Run("completed booking cannot be completed again", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Complete(ctx, 2)
		require.ErrorIs(t, err, ErrCannotComplete)
		assert.Zero(t, repo.updatedStatusID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Complete(ctx, 999)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

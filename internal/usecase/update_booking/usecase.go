package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	bookingRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	roomRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	roomRepo        RoomRepository
	bookingRepo     BookingRepository
	availabilitySvc AvailabilityService
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	availabilitySvc AvailabilityService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		bookingRepo:     bookingRepo,
		availabilitySvc: availabilitySvc,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования.
//
// При проверке конфликтов само изменяемое бронирование исключается из
// сравнения: сдвиг дат внутри собственного периода не считается конфликтом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее состояние бронирования
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status %s and cannot be updated",
				booking.ID, booking.Status)
			return ErrBookingNotEditable
		}

		// 2.2. Применяем изменения поверх текущего состояния
		updated := applyChanges(booking, req)

		if !updated.Stay.IsValid() {
			uc.logger.Warn("UpdateBooking: invalid stay %s", updated.Stay)
			return ErrInvalidRange
		}

		// 2.3. Проверяем, что целевой номер может принять бронь
		room, err := uc.roomRepo.GetByID(txCtx, updated.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room id=%d not found", updated.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get room id=%d: %v", updated.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if err := validateRoom(room, updated.PeopleCount); err != nil {
			uc.logger.Warn("UpdateBooking: room id=%d validation failed: %v", updated.RoomID, err)
			return err
		}

		// 2.4. Проверка конфликтов с исключением самого бронирования
		if err := uc.availabilitySvc.ValidateNewBooking(txCtx, availability.BookingCandidate{
			RoomID:           updated.RoomID,
			Stay:             updated.Stay,
			ExcludeBookingID: booking.ID,
		}); err != nil {
			var conflictErr *domain.ConflictError
			if errors.As(err, &conflictErr) {
				uc.logger.Warn("UpdateBooking: room id=%d busy, conflicts=%v",
					updated.RoomID, conflictErr.BookingIDs())
				return conflictErr
			}
			if errors.Is(err, availability.ErrInvalidRange) {
				return ErrInvalidRange
			}
			if errors.Is(err, availability.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		// 2.5. Сохраняем изменения
		saved, err := uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				uc.logger.Warn("UpdateBooking: room id=%d conflict detected by storage", updated.RoomID)
				return &domain.ConflictError{RoomID: updated.RoomID}
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return toResponse(result), nil
}

// applyChanges накладывает заполненные поля запроса на копию бронирования
func applyChanges(booking *domain.Booking, req *Request) *domain.Booking {
	updated := *booking

	if req.RoomID != nil {
		updated.RoomID = *req.RoomID
	}
	if req.CheckIn != nil {
		updated.Stay.Start = *req.CheckIn
	}
	if req.CheckOut != nil {
		updated.Stay.End = *req.CheckOut
	}
	if req.PeopleCount != nil {
		updated.PeopleCount = *req.PeopleCount
	}
	if req.Comments != nil {
		updated.Comments = req.Comments
	}

	return &updated
}

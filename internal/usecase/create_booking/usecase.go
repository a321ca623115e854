package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	bookingRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	roomRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
	"github.com/NPaugust/Femida-sub000/internal/service/availability"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
//
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции:
// чтение активных бронирований номера идёт с FOR UPDATE, поэтому два
// конкурирующих создания по одному номеру выстраиваются в очередь, а
// exclusion constraint в БД страхует от пересечения даже вне транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, guest=%d, stay=%s - %s, people=%d",
		req.RoomID, req.GuestID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.PeopleCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	stay := domain.NewDateRange(req.CheckIn, req.CheckOut)

	// 2. Валидация периода проживания: нулевая и отрицательная длительность
	// отклоняются до любых проверок конфликтов
	if !stay.IsValid() {
		uc.logger.Warn("CreateBooking: invalid stay %s", stay)
		return nil, ErrInvalidRange
	}

	today := truncateToDay(uc.timeProvider.Now())
	if stay.Start.Before(today) {
		uc.logger.Warn("CreateBooking: check-in %s is in the past", stay.Start.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	var result *domain.Booking

	// 3. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер и проверяем, что он может принять бронь
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if err := validateRoom(room, req.PeopleCount); err != nil {
			uc.logger.Warn("CreateBooking: room id=%d validation failed: %v", req.RoomID, err)
			return err
		}

		// 3.2. Единая точка проверки конфликтов; внутри транзакции чтение
		// снапшота активных бронирований выполняется с блокировкой
		if err := uc.availabilitySvc.ValidateNewBooking(txCtx, availability.BookingCandidate{
			RoomID: req.RoomID,
			Stay:   stay,
		}); err != nil {
			var conflictErr *domain.ConflictError
			if errors.As(err, &conflictErr) {
				uc.logger.Warn("CreateBooking: room id=%d busy, conflicts=%v",
					req.RoomID, conflictErr.BookingIDs())
				return conflictErr
			}
			if errors.Is(err, availability.ErrInvalidRange) {
				return ErrInvalidRange
			}
			if errors.Is(err, availability.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		// 3.3. Сохраняем бронирование
		booking := &domain.Booking{
			RoomID:      req.RoomID,
			GuestID:     req.GuestID,
			Stay:        stay,
			PeopleCount: req.PeopleCount,
			Status:      domain.StatusActive,
			Comments:    req.Comments,
			CreatedBy:   req.CreatedBy,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				// Гонку поймал exclusion constraint в БД: конкурирующая бронь
				// успела записаться между проверкой и вставкой
				uc.logger.Warn("CreateBooking: room id=%d conflict detected by storage", req.RoomID)
				return &domain.ConflictError{RoomID: req.RoomID}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return toResponse(result), nil
}

package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	roomRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
)

// BookingCandidate кандидат на создание или изменение бронирования
type BookingCandidate struct {
	RoomID int64
	Stay   domain.DateRange

	// ExcludeBookingID исключает собственную запись бронирования из проверки
	// конфликтов. Заполняется при редактировании, 0 при создании.
	ExcludeBookingID int64
}

// Movements заезды и выезды за период [From, To)
type Movements struct {
	From       time.Time
	To         time.Time
	Arrivals   []*domain.Booking
	Departures []*domain.Booking
}

// Service сервис запросов доступности номеров
//
// Единственный источник правды для правил пересечения дат и статусов номеров:
// все workflow (создание и редактирование бронирований, календарь, отчеты)
// ходят сюда вместо того, чтобы повторять сравнение диапазонов на месте.
// Сервис не хранит состояния: каждая операция - чистое вычисление над свежим
// снапшотом из репозиториев.
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetRoomStatus возвращает состояние номера на указанный момент
func (s *Service) GetRoomStatus(ctx context.Context, roomID int64, at time.Time) (domain.RoomState, error) {
	room, err := s.getRoom(ctx, roomID, "GetRoomStatus")
	if err != nil {
		return "", err
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, roomID, false)
	if err != nil {
		s.logger.Error("GetRoomStatus: failed to get bookings for room id=%d: %v", roomID, err)
		return "", fmt.Errorf("%w: GetRoomStatus - repository error: %v", ErrInternal, err)
	}

	state := domain.ResolveRoomState(room, bookings, at)
	s.logger.Info("GetRoomStatus: room id=%d at %s -> %s", roomID, at.Format(domain.DateFormat), state)
	return state, nil
}

// CheckAvailability проверяет, свободен ли номер на весь указанный период
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, rng domain.DateRange) (bool, error) {
	if !rng.IsValid() {
		s.logger.Warn("CheckAvailability: invalid range %s for room id=%d", rng, roomID)
		return false, ErrInvalidRange
	}

	if _, err := s.getRoom(ctx, roomID, "CheckAvailability"); err != nil {
		return false, err
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, roomID, false)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to get bookings for room id=%d: %v", roomID, err)
		return false, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	available := !domain.HasConflict(roomID, rng, bookings)
	s.logger.Info("CheckAvailability: room id=%d, range %s -> %t", roomID, rng, available)
	return available, nil
}

// ListAvailableRooms возвращает номера, способные принять запрошенное проживание
// Отсутствие подходящих номеров - не ошибка: возвращается пустой список
func (s *Service) ListAvailableRooms(ctx context.Context, query domain.AvailabilityQuery) ([]*domain.Room, error) {
	if !query.Range.IsValid() {
		s.logger.Warn("ListAvailableRooms: invalid range %s", query.Range)
		return nil, ErrInvalidRange
	}

	rooms, err := s.roomRepo.List(ctx, domain.RoomsFilter{
		BuildingID: query.BuildingID,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("ListAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableRooms - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("ListAvailableRooms: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableRooms - repository error: %v", ErrInternal, err)
	}

	available := domain.FilterAvailableRooms(query, rooms, bookings)
	s.logger.Info("ListAvailableRooms: range %s, capacity>=%d -> %d of %d rooms",
		query.Range, query.MinCapacity, len(available), len(rooms))
	return available, nil
}

// GetDisabledDates возвращает периоды активных бронирований номера для
// блокировки дат в календаре UI. Возвращаются диапазоны, а не развёрнутые
// списки дней: длинное проживание не раздувает ответ.
func (s *Service) GetDisabledDates(ctx context.Context, roomID int64) ([]domain.DateRange, error) {
	if _, err := s.getRoom(ctx, roomID, "GetDisabledDates"); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, roomID, false)
	if err != nil {
		s.logger.Error("GetDisabledDates: failed to get bookings for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetDisabledDates - repository error: %v", ErrInternal, err)
	}

	ranges := make([]domain.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		ranges = append(ranges, b.Stay)
	}

	s.logger.Info("GetDisabledDates: room id=%d -> %d busy ranges", roomID, len(ranges))
	return ranges, nil
}

// ReportOccupancy строит снапшот занятости на указанный момент
func (s *Service) ReportOccupancy(ctx context.Context, at time.Time) (*domain.OccupancySnapshot, error) {
	rooms, err := s.roomRepo.List(ctx, domain.RoomsFilter{OnlyActive: true})
	if err != nil {
		s.logger.Error("ReportOccupancy: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: ReportOccupancy - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("ReportOccupancy: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: ReportOccupancy - repository error: %v", ErrInternal, err)
	}

	snapshot := domain.BuildOccupancySnapshot(rooms, bookings, at)
	s.logger.Info("ReportOccupancy: at=%s total=%d occupied=%d free=%d maintenance=%d",
		at.Format(domain.DateFormat), snapshot.Total, snapshot.Occupied, snapshot.Free, snapshot.UnderMaintenance)
	return snapshot, nil
}

// Movements возвращает заезды и выезды за период [from, to)
// Питает дашборд "заезды/выезды сегодня" и печатные отчеты
func (s *Service) Movements(ctx context.Context, from, to time.Time) (*Movements, error) {
	window := domain.DateRange{Start: from, End: to}
	if !window.IsValid() {
		s.logger.Warn("Movements: invalid window %s", window)
		return nil, ErrInvalidRange
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Movements: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: Movements - repository error: %v", ErrInternal, err)
	}

	movements := &Movements{
		From:       from,
		To:         to,
		Arrivals:   domain.ArrivalsInWindow(bookings, from, to),
		Departures: domain.DeparturesInWindow(bookings, from, to),
	}

	s.logger.Info("Movements: window %s -> %d arrivals, %d departures",
		window, len(movements.Arrivals), len(movements.Departures))
	return movements, nil
}

// ValidateNewBooking единая точка проверки кандидата перед записью
//
// Каждый workflow создания или редактирования бронирования обязан вызвать
// её до persist. Возвращает *domain.ConflictError с id и датами всех
// мешающих бронирований, чтобы вызывающая сторона могла показать
// "номер занят с X по Y".
//
// Проверка детерминирована для данного снапшота; атомарность против
// конкурентной записи обеспечивает слой хранения (сериализуемая транзакция
// с FOR UPDATE плюс exclusion constraint) - вызов внутри транзакции
// автоматически читает снапшот с блокировкой.
func (s *Service) ValidateNewBooking(ctx context.Context, candidate BookingCandidate) error {
	if !candidate.Stay.IsValid() {
		s.logger.Warn("ValidateNewBooking: invalid stay %s for room id=%d", candidate.Stay, candidate.RoomID)
		return ErrInvalidRange
	}

	if _, err := s.getRoom(ctx, candidate.RoomID, "ValidateNewBooking"); err != nil {
		return err
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, candidate.RoomID, false)
	if err != nil {
		s.logger.Error("ValidateNewBooking: failed to get bookings for room id=%d: %v", candidate.RoomID, err)
		return fmt.Errorf("%w: ValidateNewBooking - repository error: %v", ErrInternal, err)
	}

	conflicts := domain.FindConflicts(candidate.RoomID, candidate.Stay, bookings, candidate.ExcludeBookingID)
	if len(conflicts) > 0 {
		conflictErr := domain.NewConflictError(candidate.RoomID, conflicts)
		s.logger.Warn("ValidateNewBooking: room id=%d, stay %s conflicts with bookings %v",
			candidate.RoomID, candidate.Stay, conflictErr.BookingIDs())
		return conflictErr
	}

	s.logger.Info("ValidateNewBooking: room id=%d, stay %s - no conflicts", candidate.RoomID, candidate.Stay)
	return nil
}

func (s *Service) getRoom(ctx context.Context, roomID int64, op string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: failed to get room id=%d: %v", op, roomID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

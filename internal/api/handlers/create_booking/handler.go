package create_booking

import (
	"errors"
	"net/http"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	createBooking "github.com/NPaugust/Femida-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange         = "дата заезда должна быть раньше даты выезда"
	msgDateInPast           = "дата заезда в прошлом"
	msgRoomNotFound         = "номер не найден"
	msgRoomUnderMaintenance = "номер на ремонте"
	msgRoomInactive         = "номер выведен из эксплуатации"
	msgCapacityExceeded     = "количество гостей превышает вместимость номера"
	msgRoomBusy             = "номер занят на выбранные даты"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *domain.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Room busy: room_id=%d, conflicts=%v",
				req.RoomID, conflictErr.BookingIDs())
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgRoomBusy, conflictErr))

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid stay range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnderMaintenance):
			h.logger.Warn("POST /bookings - Room under maintenance: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnderMaintenance)

		case errors.Is(err, createBooking.ErrRoomInactive):
			h.logger.Warn("POST /bookings - Room inactive: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d, people=%d",
				req.RoomID, req.PeopleCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, guest_id=%d, error=%v",
				req.RoomID, req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, guest_id=%d",
		result.ID, result.RoomID, result.GuestID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NPaugust/Femida-sub000/internal/api/handlers"
	"github.com/NPaugust/Femida-sub000/internal/domain"
	updateBooking "github.com/NPaugust/Femida-sub000/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID     = "некорректный id бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange         = "дата заезда должна быть раньше даты выезда"
	msgBookingNotFound      = "бронирование не найдено"
	msgBookingNotEditable   = "бронирование нельзя изменить"
	msgRoomNotFound         = "номер не найден"
	msgRoomUnderMaintenance = "номер на ремонте"
	msgRoomInactive         = "номер выведен из эксплуатации"
	msgCapacityExceeded     = "количество гостей превышает вместимость номера"
	msgRoomBusy             = "номер занят на выбранные даты"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *domain.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /bookings/{id} - Room busy: booking_id=%d, conflicts=%v",
				bookingID, conflictErr.BookingIDs())
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgRoomBusy, conflictErr))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingNotEditable):
			h.logger.Warn("PATCH /bookings/{id} - Booking not editable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotEditable)

		case errors.Is(err, updateBooking.ErrInvalidRange):
			h.logger.Warn("PATCH /bookings/{id} - Invalid stay range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Room not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrRoomUnderMaintenance):
			h.logger.Warn("PATCH /bookings/{id} - Room under maintenance: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnderMaintenance)

		case errors.Is(err, updateBooking.ErrRoomInactive):
			h.logger.Warn("PATCH /bookings/{id} - Room inactive: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id} - Capacity exceeded: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package update_booking

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	updateBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingLocked      = "бронирование нельзя изменить после заселения"
	msgRoomNotFound       = "комната не найдена"
	msgRoomInMaintenance  = "комната на обслуживании"
	msgRoomNotAvailable   = "комната занята на выбранные даты"
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

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hotelID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse dates: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidDateRange):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidDates, msgInvalidDateRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found: hotel=%d", bookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingLocked):
			h.logger.Warn("PUT /bookings/%d - Booking locked: hotel=%d", bookingID, hotelID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeBookingLocked, msgBookingLocked)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/%d - Room not found: hotel=%d, room=%d", bookingID, hotelID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrRoomInMaintenance):
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomInMaintenance, msgRoomInMaintenance)

		case errors.Is(err, updateBooking.ErrRoomNotAvailable):
			h.logger.Warn("PUT /bookings/%d - Room not available: hotel=%d, room=%d", bookingID, hotelID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomNotAvailable, msgRoomNotAvailable)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: hotel=%d, error=%v", bookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated: hotel=%d, total=%s",
		bookingID, hotelID, result.TotalPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

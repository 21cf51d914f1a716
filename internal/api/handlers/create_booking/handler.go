package create_booking

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	createBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound       = "комната не найдена"
	msgGuestNotFound      = "гость не найден"
	msgRoomInMaintenance  = "комната на обслуживании"
	msgRoomNotAvailable   = "комната занята на выбранные даты"
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
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hotelID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: hotel=%d, room=%d", hotelID, req.RoomID)
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidDates, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: hotel=%d, room=%d", hotelID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: hotel=%d, guest=%d", hotelID, req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrRoomInMaintenance):
			h.logger.Warn("POST /bookings - Room in maintenance: hotel=%d, room=%d", hotelID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomInMaintenance, msgRoomInMaintenance)

		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: hotel=%d, room=%d", hotelID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomNotAvailable, msgRoomNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: hotel=%d, room=%d, error=%v",
				hotelID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, hotel=%d, room=%d",
		result.ID, hotelID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package move_booking

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	moveBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/move_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingLocked      = "бронирование нельзя переселить после заселения"
	msgSameRoom           = "бронирование уже в этой комнате"
	msgRoomNotFound       = "целевая комната не найдена"
	msgRoomInMaintenance  = "целевая комната на обслуживании"
	msgRoomNotAvailable   = "целевая комната занята на эти даты"
)

type Handler struct {
	useCase MoveBookingUseCase
	logger  Logger
}

func NewHandler(useCase MoveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/move-room
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

	var req MoveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/move-room - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &moveBooking.Request{
		HotelID:   hotelID,
		BookingID: bookingID,
		NewRoomID: req.NewRoomID,
	})
	if err != nil {
		switch {
		case errors.Is(err, moveBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, moveBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/move-room - Booking not found: hotel=%d", bookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, moveBooking.ErrBookingLocked):
			h.logger.Warn("PATCH /bookings/%d/move-room - Booking locked: hotel=%d", bookingID, hotelID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeBookingLocked, msgBookingLocked)

		case errors.Is(err, moveBooking.ErrSameRoom):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeSameRoom, msgSameRoom)

		case errors.Is(err, moveBooking.ErrRoomNotFound):
			h.logger.Warn("PATCH /bookings/%d/move-room - Room not found: hotel=%d, room=%d", bookingID, hotelID, req.NewRoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, moveBooking.ErrRoomInMaintenance):
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomInMaintenance, msgRoomInMaintenance)

		case errors.Is(err, moveBooking.ErrRoomNotAvailable):
			h.logger.Warn("PATCH /bookings/%d/move-room - Room not available: hotel=%d, room=%d", bookingID, hotelID, req.NewRoomID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeRoomNotAvailable, msgRoomNotAvailable)

		default:
			h.logger.Error("PATCH /bookings/%d/move-room - Failed to move booking: hotel=%d, error=%v", bookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/move-room - Booking moved to room=%d: hotel=%d, total=%s",
		bookingID, result.RoomID, hotelID, result.TotalPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

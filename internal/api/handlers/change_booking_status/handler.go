package change_booking_status

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	changeStatus "github.com/m0rzh/HMS-BookingService/internal/usecase/change_booking_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgBookingHasDue      = "по бронированию есть задолженность"
)

type Handler struct {
	useCase ChangeBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
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

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &changeStatus.Request{
		HotelID:   hotelID,
		BookingID: bookingID,
		NewStatus: req.Status,
	})
	if err != nil {
		var dueErr *changeStatus.DueError

		switch {
		case errors.Is(err, changeStatus.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, changeStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/status - Booking not found: hotel=%d", bookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.As(err, &dueErr):
			h.logger.Warn("PATCH /bookings/%d/status - Checkout blocked, due=%s: hotel=%d",
				bookingID, dueErr.Due.String(), hotelID)
			handlers.RespondErrorDetails(w, http.StatusConflict, handlers.CodeBookingHasDue, msgBookingHasDue,
				map[string]interface{}{"due": dueErr.Due})

		case errors.Is(err, changeStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/status - Invalid transition to %q: hotel=%d",
				bookingID, req.Status, hotelID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeInvalidTransition, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/%d/status - Failed to change status: hotel=%d, error=%v",
				bookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - Status changed to %s: hotel=%d", bookingID, result.Status, hotelID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

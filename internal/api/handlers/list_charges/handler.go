package list_charges

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service ChargeService
	logger  Logger
}

func NewHandler(service ChargeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// chargeListResponse обертка со списком начислений
type chargeListResponse struct {
	Charges []*models.ChargeResponse `json:"charges"`
}

// Handle GET /api/v1/charges?bookingId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	bookingID, err := handlers.QueryInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.ListByBooking(r.Context(), hotelID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, charges.ErrBookingNotFound):
			h.logger.Warn("GET /charges - Booking not found: booking=%d, hotel=%d", bookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /charges - Failed to list charges: booking=%d, hotel=%d, error=%v",
				bookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, chargeListResponse{Charges: result})
}

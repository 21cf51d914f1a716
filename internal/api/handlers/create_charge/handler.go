package create_charge

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "нельзя добавить начисление к отмененному бронированию"
)

// CreateChargeRequest HTTP request model
type CreateChargeRequest struct {
	BookingID   int64           `json:"bookingId"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

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

// Handle POST /api/v1/charges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var req CreateChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /charges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateChargeRequest{
		HotelID:     hotelID,
		BookingID:   req.BookingID,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, charges.ErrInvalidInput):
			h.logger.Warn("POST /charges - Invalid input: booking=%d, %v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, charges.ErrBookingNotFound):
			h.logger.Warn("POST /charges - Booking not found: booking=%d, hotel=%d", req.BookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, charges.ErrBookingCancelled):
			h.logger.Warn("POST /charges - Booking cancelled: booking=%d, hotel=%d", req.BookingID, hotelID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeBookingLocked, msgBookingCancelled)

		default:
			h.logger.Error("POST /charges - Failed to create charge: booking=%d, hotel=%d, error=%v",
				req.BookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /charges - Charge created: charge_id=%d, booking=%d, hotel=%d",
		result.ID, req.BookingID, hotelID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

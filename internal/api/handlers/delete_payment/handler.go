package delete_payment

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "некорректный ID платежа"
	msgPaymentNotFound  = "платеж не найден"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/payments/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	paymentID, err := handlers.PathInt64(r, "paymentId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	if err := h.service.Delete(r.Context(), hotelID, paymentID); err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("DELETE /payments/%d - Payment not found: hotel=%d", paymentID, hotelID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("DELETE /payments/%d - Failed to delete payment: hotel=%d, error=%v", paymentID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /payments/%d - Payment deleted: hotel=%d", paymentID, hotelID)
	handlers.RespondNoContent(w)
}

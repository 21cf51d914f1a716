package create_payment

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	recordPayment "github.com/m0rzh/HMS-BookingService/internal/usecase/record_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "нельзя провести платеж по отмененному бронированию"
	msgAmountExceeds      = "сумма платежа превышает остаток к оплате"
)

type Handler struct {
	useCase RecordPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RecordPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(hotelID))
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: booking=%d, %v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, recordPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments - Booking not found: booking=%d, hotel=%d", req.BookingID, hotelID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, recordPayment.ErrBookingLocked):
			h.logger.Warn("POST /payments - Booking cancelled: booking=%d, hotel=%d", req.BookingID, hotelID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeBookingLocked, msgBookingCancelled)

		case errors.Is(err, recordPayment.ErrAmountExceedsBalance):
			h.logger.Warn("POST /payments - Amount exceeds balance: booking=%d, hotel=%d, amount=%s",
				req.BookingID, hotelID, req.Amount.String())
			handlers.RespondError(w, http.StatusConflict, handlers.CodeAmountExceedsBalance, msgAmountExceeds)

		default:
			h.logger.Error("POST /payments - Failed to record payment: booking=%d, hotel=%d, error=%v",
				req.BookingID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment recorded: payment_id=%d, booking=%d, hotel=%d, amount=%s",
		result.ID, req.BookingID, hotelID, result.Amount.String())
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

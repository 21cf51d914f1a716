package update_payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	updatePayment "github.com/m0rzh/HMS-BookingService/internal/usecase/update_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPaymentID   = "некорректный ID платежа"
	msgPaymentNotFound    = "платеж не найден"
	msgAmountExceeds      = "сумма платежа превышает остаток к оплате"
)

// UpdatePaymentRequest HTTP request model
type UpdatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Status string          `json:"status"`
	PaidAt *time.Time      `json:"paidAt,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID        int64           `json:"id"`
	BookingID int64           `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	PaidAt    string          `json:"paidAt"`
	UpdatedAt string          `json:"updatedAt"`
}

type Handler struct {
	useCase UpdatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/payments/{paymentId}
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

	var req UpdatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /payments/%d - Invalid request body: %v", paymentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &updatePayment.Request{
		HotelID:   hotelID,
		PaymentID: paymentID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    req.Status,
	}
	if req.PaidAt != nil {
		useCaseReq.PaidAt = *req.PaidAt
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updatePayment.ErrInvalidInput):
			h.logger.Warn("PUT /payments/%d - Invalid input: %v", paymentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updatePayment.ErrPaymentNotFound):
			h.logger.Warn("PUT /payments/%d - Payment not found: hotel=%d", paymentID, hotelID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, updatePayment.ErrAmountExceedsBalance):
			h.logger.Warn("PUT /payments/%d - Amount exceeds balance: hotel=%d, amount=%s",
				paymentID, hotelID, req.Amount.String())
			handlers.RespondError(w, http.StatusConflict, handlers.CodeAmountExceedsBalance, msgAmountExceeds)

		default:
			h.logger.Error("PUT /payments/%d - Failed to update payment: hotel=%d, error=%v", paymentID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /payments/%d - Payment updated: hotel=%d, amount=%s", paymentID, hotelID, result.Amount.String())
	handlers.RespondJSON(w, http.StatusOK, &PaymentResponse{
		ID:        result.ID,
		BookingID: result.BookingID,
		Amount:    result.Amount,
		Method:    result.Method,
		Status:    result.Status,
		PaidAt:    result.PaidAt.Format(time.RFC3339),
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	})
}

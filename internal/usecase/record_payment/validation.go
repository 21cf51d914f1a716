package record_payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает разобранные
// метод и статус платежа
func validateRequest(req *Request) (domain.PaymentMethod, domain.PaymentStatus, error) {
	if req.HotelID <= 0 {
		return "", "", fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return "", "", fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		return "", "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	status := domain.PaymentCompleted
	if req.Status != "" {
		status, err = domain.ParsePaymentStatus(req.Status)
		if err != nil {
			return "", "", fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.Status)
		}
	}

	return method, status, nil
}

package list_payments

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/payments/models"
)

type PaymentService interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

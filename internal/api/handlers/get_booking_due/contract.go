package get_booking_due

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
)

type BillingService interface {
	GetDue(ctx context.Context, hotelID, bookingID int64) (*models.DueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

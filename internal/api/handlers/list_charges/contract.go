package list_charges

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

type ChargeService interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

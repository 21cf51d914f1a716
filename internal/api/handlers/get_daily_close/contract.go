package get_daily_close

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
)

type BillingService interface {
	GetClose(ctx context.Context, hotelID int64, dateKey string) (*models.DailyCloseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

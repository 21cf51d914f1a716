package list_daily_closes

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
)

type BillingService interface {
	ListCloses(ctx context.Context, hotelID int64) ([]*models.DailyCloseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

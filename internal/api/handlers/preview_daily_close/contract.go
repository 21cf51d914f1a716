package preview_daily_close

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
)

type BillingService interface {
	PreviewClose(ctx context.Context, hotelID int64, dateKey string) (*models.ClosePreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_charge

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

type ChargeService interface {
	Update(ctx context.Context, req *models.UpdateChargeRequest) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

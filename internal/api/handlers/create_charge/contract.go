package create_charge

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

type ChargeService interface {
	Create(ctx context.Context, req *models.CreateChargeRequest) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

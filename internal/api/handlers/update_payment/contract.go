package update_payment

import (
	"context"

	updatePayment "github.com/m0rzh/HMS-BookingService/internal/usecase/update_payment"
)

type UpdatePaymentUseCase interface {
	Execute(ctx context.Context, req *updatePayment.Request) (*updatePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_daily_close

import (
	"context"

	createClose "github.com/m0rzh/HMS-BookingService/internal/usecase/create_daily_close"
)

type CreateDailyCloseUseCase interface {
	Execute(ctx context.Context, req *createClose.Request) (*createClose.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_payment

import "context"

type PaymentService interface {
	Delete(ctx context.Context, hotelID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

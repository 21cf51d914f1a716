package payments

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Payment, error)
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Payment, error)
	Delete(ctx context.Context, hotelID, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package charges

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	Create(ctx context.Context, c *domain.Charge) (*domain.Charge, error)
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Charge, error)
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Charge, error)
	Update(ctx context.Context, c *domain.Charge) error
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

package billing

import (
	"context"
	"time"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Booking, error)
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Charge, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Payment, error)
	ListCompletedBetween(ctx context.Context, hotelID int64, from, to time.Time) ([]*domain.Payment, error)
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// DailyCloseRepository интерфейс репозитория закрытий дня
type DailyCloseRepository interface {
	GetByDateKey(ctx context.Context, hotelID int64, dateKey types.DateKey) (*domain.DailyClose, error)
	List(ctx context.Context, hotelID int64) ([]*domain.DailyClose, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

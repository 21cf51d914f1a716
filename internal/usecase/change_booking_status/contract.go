package change_booking_status

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, hotelID, id int64, status domain.BookingStatus) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	UpdateStatus(ctx context.Context, hotelID, roomID int64, status domain.RoomStatus) error
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Charge, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Payment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingStatusTransition(toStatus string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

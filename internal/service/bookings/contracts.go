package bookings

import (
	"context"
	"time"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, hotelID, id int64) (*domain.Booking, error)
	ListForRange(ctx context.Context, hotelID int64, from, to time.Time) ([]*domain.Booking, error)
	Delete(ctx context.Context, hotelID, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context, hotelID int64) ([]*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/internal/integrations/gueststore"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListOccupyingByRoom(ctx context.Context, hotelID, roomID int64, excludeID *int64) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error)
}

// GuestStoreClient интерфейс клиента справочника гостей
type GuestStoreClient interface {
	GetGuestWithGracefulDegradation(ctx context.Context, hotelID, guestID int64) (*gueststore.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_daily_close

import (
	"context"
	"time"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	ListCompletedBetween(ctx context.Context, hotelID int64, from, to time.Time) ([]*domain.Payment, error)
}

// DailyCloseRepository интерфейс репозитория закрытий дня
type DailyCloseRepository interface {
	Create(ctx context.Context, dc *domain.DailyClose) (*domain.DailyClose, error)
	GetByDateKey(ctx context.Context, hotelID int64, dateKey types.DateKey) (*domain.DailyClose, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncDailyClose()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_daily_close

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	dailycloseRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/dailyclose"
	hotelRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/hotel"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// UseCase use case закрытия дня: неизменяемый финансовый снимок
// завершенных платежей за один календарный день отеля.
// Границы дня берутся в часовом поясе отеля; уникальность пары
// (отель, день) гарантирует сериализуемая транзакция, а уникальный
// индекс в БД служит страховкой.
type UseCase struct {
	hotelRepo      HotelRepository
	paymentRepo    PaymentRepository
	dailyCloseRepo DailyCloseRepository
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	paymentRepo PaymentRepository,
	dailyCloseRepo DailyCloseRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:      hotelRepo,
		paymentRepo:    paymentRepo,
		dailyCloseRepo: dailyCloseRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет закрытие дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDailyClose: hotel=%d, dateKey=%s", req.HotelID, req.DateKey)

	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	dateKey, err := types.ParseDateKey(req.DateKey)
	if err != nil {
		uc.logger.Warn("CreateDailyClose: invalid dateKey %q: %v", req.DateKey, err)
		return nil, fmt.Errorf("%w: invalid dateKey %q", ErrInvalidInput, req.DateKey)
	}

	// Часовой пояс отеля определяет границы календарного дня
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateDailyClose: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateDailyClose: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	dayStart, dayEnd, err := dateKey.DayBounds(hotel.Location())
	if err != nil {
		uc.logger.Error("CreateDailyClose: failed to resolve day bounds for %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to resolve day bounds: %v", ErrInternal, err)
	}

	var result *domain.DailyClose

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Повторное закрытие дня отклоняется
		if _, err := uc.dailyCloseRepo.GetByDateKey(txCtx, req.HotelID, dateKey); err == nil {
			uc.logger.Warn("CreateDailyClose: close for hotel=%d date=%s already exists", req.HotelID, dateKey)
			return ErrDailyCloseExists
		} else if !errors.Is(err, dailycloseRepo.ErrDailyCloseNotFound) {
			uc.logger.Error("CreateDailyClose: failed to check existing close: %v", err)
			return fmt.Errorf("%w: failed to check existing close: %v", ErrInternal, err)
		}

		// 2. Собираем завершенные платежи за день
		payments, err := uc.paymentRepo.ListCompletedBetween(txCtx, req.HotelID, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateDailyClose: failed to list payments: %v", err)
			return fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
		}

		total, count, byMethod := domain.AggregatePayments(payments)

		// 3. Фиксируем снимок; уникальный индекс ловит гонку двух закрытий
		created, err := uc.dailyCloseRepo.Create(txCtx, &domain.DailyClose{
			HotelID:        req.HotelID,
			DateKey:        dateKey,
			TotalCompleted: total,
			CountCompleted: count,
			ByMethod:       byMethod,
			Notes:          req.Notes,
			CreatedBy:      req.CreatedBy,
		})
		if err != nil {
			if errors.Is(err, dailycloseRepo.ErrDailyCloseExists) {
				return ErrDailyCloseExists
			}
			uc.logger.Error("CreateDailyClose: failed to create close: %v", err)
			return fmt.Errorf("%w: failed to create close: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncDailyClose()
	uc.logger.Info("CreateDailyClose: close id=%d created for hotel=%d date=%s, total=%s, count=%d",
		result.ID, result.HotelID, result.DateKey, result.TotalCompleted.String(), result.CountCompleted)

	return fromDomain(result), nil
}

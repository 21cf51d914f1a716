package change_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования — исполнитель стейт-машины.
// Переходы вне таблицы отклоняются; выселение дополнительно защищено
// гардом незакрытого баланса.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	chargeRepo  ChargeRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	chargeRepo ChargeRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		chargeRepo:  chargeRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет смену статуса.
// Гард выселения и сама запись выполняются в одной сериализуемой
// транзакции: параллельная запись платежа не может обойти проверку баланса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeBookingStatus: hotel=%d, booking=%d, newStatus=%s",
		req.HotelID, req.BookingID, req.NewStatus)

	if req.HotelID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: hotelID and bookingID must be positive", ErrInvalidInput)
	}

	// Парсим статус один раз на границе; неизвестные значения отклоняются
	newStatus, err := domain.ParseBookingStatus(req.NewStatus)
	if err != nil {
		uc.logger.Warn("ChangeBookingStatus: unknown status %q", req.NewStatus)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.NewStatus)
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.HotelID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ChangeBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Переход должен присутствовать в таблице стейт-машины
		if !booking.CanTransitionTo(newStatus) {
			uc.logger.Warn("ChangeBookingStatus: invalid transition %s -> %s for booking id=%d",
				booking.Status, newStatus, booking.ID)
			return ErrInvalidTransition
		}

		// 3. Гард выселения: баланс должен быть закрыт
		if newStatus == domain.StatusCheckedOut {
			due, err := uc.computeDue(txCtx, booking)
			if err != nil {
				return err
			}
			if !due.IsSettled() {
				uc.logger.Warn("ChangeBookingStatus: booking id=%d has due=%s, checkout blocked",
					booking.ID, due.Due.String())
				return &DueError{Due: due.Due}
			}
		}

		// 4. Записываем переход
		if err := uc.bookingRepo.UpdateStatus(txCtx, req.HotelID, booking.ID, newStatus); err != nil {
			uc.logger.Error("ChangeBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 5. Операционный статус комнаты следует за жизненным циклом
		if err := uc.syncRoomStatus(txCtx, booking, newStatus); err != nil {
			return err
		}

		booking.Status = newStatus
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingStatusTransition(string(result.Status))
	uc.logger.Info("ChangeBookingStatus: booking id=%d is now %s", result.ID, result.Status)

	return fromDomain(result), nil
}

// computeDue пересчитывает баланс бронирования из исходных строк
func (uc *UseCase) computeDue(ctx context.Context, booking *domain.Booking) (domain.DueStatement, error) {
	charges, err := uc.chargeRepo.ListByBooking(ctx, booking.HotelID, booking.ID)
	if err != nil {
		uc.logger.Error("ChangeBookingStatus: failed to list charges for booking id=%d: %v", booking.ID, err)
		return domain.DueStatement{}, fmt.Errorf("%w: failed to list charges: %v", ErrInternal, err)
	}

	payments, err := uc.paymentRepo.ListByBooking(ctx, booking.HotelID, booking.ID)
	if err != nil {
		uc.logger.Error("ChangeBookingStatus: failed to list payments for booking id=%d: %v", booking.ID, err)
		return domain.DueStatement{}, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	return domain.ComputeDue(booking, charges, payments), nil
}

// syncRoomStatus отражает заселение/выселение на статусе комнаты
func (uc *UseCase) syncRoomStatus(ctx context.Context, booking *domain.Booking, newStatus domain.BookingStatus) error {
	var roomStatus domain.RoomStatus

	switch newStatus {
	case domain.StatusCheckedIn:
		roomStatus = domain.RoomOccupied
	case domain.StatusCheckedOut:
		roomStatus = domain.RoomAvailable
	default:
		return nil
	}

	if err := uc.roomRepo.UpdateStatus(ctx, booking.HotelID, booking.RoomID, roomStatus); err != nil {
		uc.logger.Error("ChangeBookingStatus: failed to update room id=%d status: %v", booking.RoomID, err)
		return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
	}

	return nil
}

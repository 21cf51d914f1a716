package record_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
)

// UseCase use case для проведения платежа по бронированию.
// Проверка переплаты и вставка платежа выполняются в одной
// сериализуемой транзакции: два параллельных платежа не могут
// вдвоем превысить остаток.
type UseCase struct {
	bookingRepo BookingRepository
	chargeRepo  ChargeRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	chargeRepo ChargeRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		chargeRepo:  chargeRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проводит платеж
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: hotel=%d, booking=%d, amount=%s, method=%s",
		req.HotelID, req.BookingID, req.Amount.String(), req.Method)

	method, status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	var result *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.HotelID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RecordPayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RecordPayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. По отмененному бронированию платежи не проводятся
		if booking.Status == domain.StatusCancelled {
			uc.logger.Warn("RecordPayment: booking id=%d is cancelled", booking.ID)
			return ErrBookingLocked
		}

		// 3. Завершенный платеж не должен превышать остаток
		due, err := uc.computeDue(txCtx, booking)
		if err != nil {
			return err
		}

		if status == domain.PaymentCompleted && req.Amount.GreaterThan(due.Due) {
			uc.logger.Warn("RecordPayment: amount %s exceeds due %s for booking id=%d",
				req.Amount.String(), due.Due.String(), booking.ID)
			return ErrAmountExceedsBalance
		}

		// 4. Проводим платеж
		payment := &domain.Payment{
			HotelID:   req.HotelID,
			BookingID: booking.ID,
			Amount:    req.Amount,
			Method:    method,
			Status:    status,
			PaidAt:    paidAt,
		}

		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			uc.logger.Error("RecordPayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		remaining := due.Due
		if created.IsCompleted() {
			remaining = remaining.Sub(created.Amount)
		}

		result = fromDomain(created, remaining)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncPaymentRecorded(result.Method)
	uc.logger.Info("RecordPayment: payment id=%d recorded for booking id=%d, remaining due=%s",
		result.ID, result.BookingID, result.Due.String())

	return result, nil
}

// computeDue пересчитывает остаток по бронированию из исходных строк
func (uc *UseCase) computeDue(ctx context.Context, booking *domain.Booking) (domain.DueStatement, error) {
	charges, err := uc.chargeRepo.ListByBooking(ctx, booking.HotelID, booking.ID)
	if err != nil {
		uc.logger.Error("RecordPayment: failed to list charges for booking id=%d: %v", booking.ID, err)
		return domain.DueStatement{}, fmt.Errorf("%w: failed to list charges: %v", ErrInternal, err)
	}

	payments, err := uc.paymentRepo.ListByBooking(ctx, booking.HotelID, booking.ID)
	if err != nil {
		uc.logger.Error("RecordPayment: failed to list payments for booking id=%d: %v", booking.ID, err)
		return domain.DueStatement{}, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	return domain.ComputeDue(booking, charges, payments), nil
}

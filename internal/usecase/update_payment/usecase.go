package update_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	paymentRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/payment"
)

// UseCase use case для изменения платежа.
// Остаток пересчитывается без вклада редактируемого платежа: уменьшение
// суммы всегда допустимо, увеличение сверх остатка отклоняется.
type UseCase struct {
	bookingRepo BookingRepository
	chargeRepo  ChargeRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	chargeRepo ChargeRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		chargeRepo:  chargeRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет изменение платежа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePayment: hotel=%d, payment=%d, amount=%s, method=%s, status=%s",
		req.HotelID, req.PaymentID, req.Amount.String(), req.Method, req.Status)

	method, status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdatePayment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Payment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем платеж с блокировкой строки
		payment, err := uc.paymentRepo.GetByID(txCtx, req.HotelID, req.PaymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("UpdatePayment: payment id=%d not found", req.PaymentID)
				return ErrPaymentNotFound
			}
			uc.logger.Error("UpdatePayment: failed to get payment id=%d: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		booking, err := uc.bookingRepo.GetByID(txCtx, req.HotelID, payment.BookingID)
		if err != nil {
			uc.logger.Error("UpdatePayment: failed to get booking id=%d: %v", payment.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Считаем остаток без вклада этого платежа
		charges, err := uc.chargeRepo.ListByBooking(txCtx, req.HotelID, booking.ID)
		if err != nil {
			uc.logger.Error("UpdatePayment: failed to list charges for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to list charges: %v", ErrInternal, err)
		}

		payments, err := uc.paymentRepo.ListByBooking(txCtx, req.HotelID, booking.ID)
		if err != nil {
			uc.logger.Error("UpdatePayment: failed to list payments for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
		}

		others := make([]*domain.Payment, 0, len(payments))
		for _, p := range payments {
			if p.ID != payment.ID {
				others = append(others, p)
			}
		}

		due := domain.ComputeDue(booking, charges, others)

		// 3. Новый завершенный платеж не должен превышать остаток
		if status == domain.PaymentCompleted && req.Amount.GreaterThan(due.Due) {
			uc.logger.Warn("UpdatePayment: amount %s exceeds due %s for booking id=%d",
				req.Amount.String(), due.Due.String(), booking.ID)
			return ErrAmountExceedsBalance
		}

		// 4. Записываем изменения
		payment.Amount = req.Amount
		payment.Method = method
		payment.Status = status
		if !req.PaidAt.IsZero() {
			payment.PaidAt = req.PaidAt
		}

		if err := uc.paymentRepo.Update(txCtx, payment); err != nil {
			uc.logger.Error("UpdatePayment: failed to update payment id=%d: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		result = payment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePayment: payment id=%d updated, amount=%s, status=%s",
		result.ID, result.Amount.String(), result.Status)

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные и возвращает разобранные
// метод и статус платежа
func validateRequest(req *Request) (domain.PaymentMethod, domain.PaymentStatus, error) {
	if req.HotelID <= 0 {
		return "", "", fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.PaymentID <= 0 {
		return "", "", fmt.Errorf("%w: paymentID must be positive", ErrInvalidInput)
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return "", "", fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		return "", "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	status, err := domain.ParsePaymentStatus(req.Status)
	if err != nil {
		return "", "", fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.Status)
	}

	return method, status, nil
}

package payments

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/payment"
	"github.com/m0rzh/HMS-BookingService/internal/service/payments/models"
)

// Service сервис чтения и удаления платежей.
// Проведение и изменение платежей живет в usecase-слое из-за
// проверок баланса; удаление разрешено всегда — остаток
// пересчитывается из оставшихся строк.
type Service struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает платеж по ID в рамках отеля
func (s *Service) GetByID(ctx context.Context, hotelID, id int64) (*models.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, hotelID, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}

// ListByBooking возвращает платежи бронирования
func (s *Service) ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*models.PaymentResponse, error) {
	if _, err := s.bookingRepo.GetByID(ctx, hotelID, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ListByBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ListByBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, hotelID, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// Delete удаляет платеж
func (s *Service) Delete(ctx context.Context, hotelID, id int64) error {
	s.logger.Info("Delete: hotel=%d, payment=%d", hotelID, id)

	if err := s.paymentRepo.Delete(ctx, hotelID, id); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Delete: payment id=%d not found", id)
			return ErrPaymentNotFound
		}
		s.logger.Error("Delete: repository error for payment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

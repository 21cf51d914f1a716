package charges

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	chargeRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/charge"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

// Service сервис начислений за потребление (мини-бар, услуги, прачечная).
// Начисления аддитивны к сумме бронирования и попадают в остаток
// через пересчет, сам сервис остаток не трогает.
type Service struct {
	chargeRepo  ChargeRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса начислений
func NewService(chargeRepo ChargeRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		chargeRepo:  chargeRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает начисление по бронированию.
// Комната берется из бронирования, чтобы отчеты по комнате
// не зависели от последующих переселений.
func (s *Service) Create(ctx context.Context, req *models.CreateChargeRequest) (*models.ChargeResponse, error) {
	s.logger.Info("Create: hotel=%d, booking=%d, category=%s, qty=%d, unitPrice=%s",
		req.HotelID, req.BookingID, req.Category, req.Quantity, req.UnitPrice.String())

	category, err := validateChargeFields(req.Category, req.Quantity, req.UnitPrice)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.HotelID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusCancelled {
		s.logger.Warn("Create: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}

	created, err := s.chargeRepo.Create(ctx, &domain.Charge{
		HotelID:     req.HotelID,
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		Category:    category,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		s.logger.Error("Create: failed to create charge: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: charge id=%d created for booking id=%d, total=%s",
		created.ID, created.BookingID, created.Total().String())

	return models.FromDomainCharge(created), nil
}

// GetByID получает начисление по ID в рамках отеля
func (s *Service) GetByID(ctx context.Context, hotelID, id int64) (*models.ChargeResponse, error) {
	charge, err := s.chargeRepo.GetByID(ctx, hotelID, id)
	if err != nil {
		if errors.Is(err, chargeRepo.ErrChargeNotFound) {
			s.logger.Warn("GetByID: charge id=%d not found", id)
			return nil, ErrChargeNotFound
		}
		s.logger.Error("GetByID: repository error for charge id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCharge(charge), nil
}

// ListByBooking возвращает начисления бронирования
func (s *Service) ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*models.ChargeResponse, error) {
	if _, err := s.bookingRepo.GetByID(ctx, hotelID, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ListByBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ListByBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	charges, err := s.chargeRepo.ListByBooking(ctx, hotelID, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainChargeList(charges), nil
}

// Update изменяет начисление
func (s *Service) Update(ctx context.Context, req *models.UpdateChargeRequest) (*models.ChargeResponse, error) {
	s.logger.Info("Update: hotel=%d, charge=%d", req.HotelID, req.ChargeID)

	category, err := validateChargeFields(req.Category, req.Quantity, req.UnitPrice)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	charge, err := s.chargeRepo.GetByID(ctx, req.HotelID, req.ChargeID)
	if err != nil {
		if errors.Is(err, chargeRepo.ErrChargeNotFound) {
			s.logger.Warn("Update: charge id=%d not found", req.ChargeID)
			return nil, ErrChargeNotFound
		}
		s.logger.Error("Update: repository error for charge id=%d: %v", req.ChargeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	charge.Category = category
	charge.Description = req.Description
	charge.Quantity = req.Quantity
	charge.UnitPrice = req.UnitPrice

	if err := s.chargeRepo.Update(ctx, charge); err != nil {
		s.logger.Error("Update: failed to update charge id=%d: %v", charge.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCharge(charge), nil
}

// Delete удаляет начисление
func (s *Service) Delete(ctx context.Context, hotelID, id int64) error {
	s.logger.Info("Delete: hotel=%d, charge=%d", hotelID, id)

	if err := s.chargeRepo.Delete(ctx, hotelID, id); err != nil {
		if errors.Is(err, chargeRepo.ErrChargeNotFound) {
			s.logger.Warn("Delete: charge id=%d not found", id)
			return ErrChargeNotFound
		}
		s.logger.Error("Delete: repository error for charge id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateChargeFields валидирует общие поля создания и изменения
func validateChargeFields(category string, quantity int, unitPrice decimal.Decimal) (domain.ChargeCategory, error) {
	parsed, err := domain.ParseChargeCategory(category)
	if err != nil {
		return "", fmt.Errorf("%w: unknown charge category %q", ErrInvalidInput, category)
	}

	if quantity <= 0 {
		return "", fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	if unitPrice.LessThan(decimal.Zero) {
		return "", fmt.Errorf("%w: unitPrice cannot be negative", ErrInvalidInput)
	}

	return parsed, nil
}

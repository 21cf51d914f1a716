package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	dailycloseRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/dailyclose"
	hotelRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/hotel"
	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// Service сервис финансовых выписок: остаток по бронированию,
// превью закрытия дня и история закрытий. Только чтение —
// остаток всегда выводится из исходных строк и нигде не кэшируется.
type Service struct {
	bookingRepo    BookingRepository
	chargeRepo     ChargeRepository
	paymentRepo    PaymentRepository
	hotelRepo      HotelRepository
	dailyCloseRepo DailyCloseRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса биллинга
func NewService(
	bookingRepo BookingRepository,
	chargeRepo ChargeRepository,
	paymentRepo PaymentRepository,
	hotelRepo HotelRepository,
	dailyCloseRepo DailyCloseRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		chargeRepo:     chargeRepo,
		paymentRepo:    paymentRepo,
		hotelRepo:      hotelRepo,
		dailyCloseRepo: dailyCloseRepo,
		logger:         logger,
	}
}

// GetDue возвращает финансовое состояние бронирования
func (s *Service) GetDue(ctx context.Context, hotelID, bookingID int64) (*models.DueResponse, error) {
	s.logger.Info("GetDue: hotel=%d, booking=%d", hotelID, bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, hotelID, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetDue: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetDue: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetDue - repository error: %v", ErrInternal, err)
	}

	charges, err := s.chargeRepo.ListByBooking(ctx, hotelID, bookingID)
	if err != nil {
		s.logger.Error("GetDue: failed to list charges for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetDue - failed to list charges: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, hotelID, bookingID)
	if err != nil {
		s.logger.Error("GetDue: failed to list payments for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetDue - failed to list payments: %v", ErrInternal, err)
	}

	return models.FromDomainDue(domain.ComputeDue(booking, charges, payments)), nil
}

// PreviewClose считает цифры закрытия дня без записи снимка.
// Идемпотентно: можно вызывать до и после фактического закрытия.
func (s *Service) PreviewClose(ctx context.Context, hotelID int64, rawDateKey string) (*models.ClosePreviewResponse, error) {
	s.logger.Info("PreviewClose: hotel=%d, dateKey=%s", hotelID, rawDateKey)

	dateKey, err := types.ParseDateKey(rawDateKey)
	if err != nil {
		s.logger.Warn("PreviewClose: invalid dateKey %q: %v", rawDateKey, err)
		return nil, fmt.Errorf("%w: invalid dateKey %q", ErrInvalidInput, rawDateKey)
	}

	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("PreviewClose: hotel id=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("PreviewClose: failed to get hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: PreviewClose - failed to get hotel: %v", ErrInternal, err)
	}

	dayStart, dayEnd, err := dateKey.DayBounds(hotel.Location())
	if err != nil {
		s.logger.Error("PreviewClose: failed to resolve day bounds for %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: PreviewClose - failed to resolve day bounds: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListCompletedBetween(ctx, hotelID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("PreviewClose: failed to list payments: %v", err)
		return nil, fmt.Errorf("%w: PreviewClose - failed to list payments: %v", ErrInternal, err)
	}

	total, count, byMethod := domain.AggregatePayments(payments)

	alreadyClosed := false
	if _, err := s.dailyCloseRepo.GetByDateKey(ctx, hotelID, dateKey); err == nil {
		alreadyClosed = true
	} else if !errors.Is(err, dailycloseRepo.ErrDailyCloseNotFound) {
		s.logger.Error("PreviewClose: failed to check existing close: %v", err)
		return nil, fmt.Errorf("%w: PreviewClose - failed to check existing close: %v", ErrInternal, err)
	}

	methods := make(map[string]decimal.Decimal, len(byMethod))
	for m, v := range byMethod {
		methods[string(m)] = v
	}

	return &models.ClosePreviewResponse{
		HotelID:        hotelID,
		DateKey:        string(dateKey),
		TotalCompleted: total,
		CountCompleted: count,
		ByMethod:       methods,
		AlreadyClosed:  alreadyClosed,
	}, nil
}

// GetClose возвращает снимок закрытия конкретного дня
func (s *Service) GetClose(ctx context.Context, hotelID int64, rawDateKey string) (*models.DailyCloseResponse, error) {
	dateKey, err := types.ParseDateKey(rawDateKey)
	if err != nil {
		s.logger.Warn("GetClose: invalid dateKey %q: %v", rawDateKey, err)
		return nil, fmt.Errorf("%w: invalid dateKey %q", ErrInvalidInput, rawDateKey)
	}

	snapshot, err := s.dailyCloseRepo.GetByDateKey(ctx, hotelID, dateKey)
	if err != nil {
		if errors.Is(err, dailycloseRepo.ErrDailyCloseNotFound) {
			s.logger.Warn("GetClose: close for hotel=%d date=%s not found", hotelID, dateKey)
			return nil, ErrDailyCloseNotFound
		}
		s.logger.Error("GetClose: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClose - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDailyClose(snapshot), nil
}

// ListCloses возвращает историю закрытий дня отеля
func (s *Service) ListCloses(ctx context.Context, hotelID int64) ([]*models.DailyCloseResponse, error) {
	closes, err := s.dailyCloseRepo.List(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListCloses: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListCloses - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDailyCloseList(closes), nil
}

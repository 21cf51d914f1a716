package move_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/room"
	"github.com/m0rzh/HMS-BookingService/pkg/ptr"
)

// UseCase use case для переселения бронирования в другую комнату.
// Даты заезда/выезда сохраняются, цена пересчитывается по тарифу
// целевой комнаты.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет переселение бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveBooking: hotel=%d, booking=%d, newRoom=%d",
		req.HotelID, req.BookingID, req.NewRoomID)

	if req.HotelID <= 0 || req.BookingID <= 0 || req.NewRoomID <= 0 {
		return nil, fmt.Errorf("%w: hotelID, bookingID and newRoomID must be positive", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.HotelID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("MoveBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("MoveBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. После заселения переселение идет только через стойку
		if !booking.CanBeMoved() {
			uc.logger.Warn("MoveBooking: booking id=%d locked, status=%s", booking.ID, booking.Status)
			return ErrBookingLocked
		}

		if booking.RoomID == req.NewRoomID {
			uc.logger.Warn("MoveBooking: booking id=%d already in room id=%d", booking.ID, req.NewRoomID)
			return ErrSameRoom
		}

		// 3. Получаем целевую комнату с блокировкой строки
		room, err := uc.roomRepo.GetByID(txCtx, req.HotelID, req.NewRoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("MoveBooking: room id=%d not found", req.NewRoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("MoveBooking: failed to get room id=%d: %v", req.NewRoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if room.IsUnderMaintenance() {
			uc.logger.Warn("MoveBooking: room id=%d is under maintenance", req.NewRoomID)
			return ErrRoomInMaintenance
		}

		// 4. Проверяем доступность целевой комнаты на те же даты
		occupying, err := uc.bookingRepo.ListOccupyingByRoom(txCtx, req.HotelID, req.NewRoomID, ptr.Ptr(booking.ID))
		if err != nil {
			uc.logger.Error("MoveBooking: failed to list occupying bookings: %v", err)
			return fmt.Errorf("%w: failed to list occupying bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FirstOverlapping(occupying, booking.CheckIn, booking.CheckOut); conflict != nil {
			uc.logger.Warn("MoveBooking: room id=%d not available, conflicts with booking id=%d",
				req.NewRoomID, conflict.ID)
			return ErrRoomNotAvailable
		}

		// 5. Пересчитываем цену по тарифу целевой комнаты
		totalPrice := room.NightlyPrice().Mul(decimal.NewFromInt(int64(booking.Nights())))

		if err := uc.bookingRepo.UpdateStay(txCtx, req.HotelID, booking.ID, req.NewRoomID, booking.CheckIn, booking.CheckOut, totalPrice); err != nil {
			uc.logger.Error("MoveBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to move booking: %v", ErrInternal, err)
		}

		booking.RoomID = req.NewRoomID
		booking.TotalPrice = totalPrice
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingMoved()
	uc.logger.Info("MoveBooking: booking id=%d moved to room id=%d, total=%s",
		result.ID, result.RoomID, result.TotalPrice.String())

	return fromDomain(result), nil
}

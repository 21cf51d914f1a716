package update_booking

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

// UseCase use case для изменения дат и/или комнаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования.
// Доступность перепроверяется против новых дат/комнаты, исключая само
// бронирование; цена пересчитывается по базовой цене типа комнаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: hotel=%d, booking=%d, room=%d, checkIn=%s, checkOut=%s",
		req.HotelID, req.BookingID, req.RoomID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.HotelID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. После заселения даты и комната зафиксированы
		if !booking.CanBeEdited() {
			uc.logger.Warn("UpdateBooking: booking id=%d locked, status=%s", booking.ID, booking.Status)
			return ErrBookingLocked
		}

		// 3. Получаем целевую комнату с блокировкой строки
		room, err := uc.roomRepo.GetByID(txCtx, req.HotelID, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if room.IsUnderMaintenance() {
			uc.logger.Warn("UpdateBooking: room id=%d is under maintenance", req.RoomID)
			return ErrRoomInMaintenance
		}

		// 4. Перепроверяем доступность, исключая само бронирование
		occupying, err := uc.bookingRepo.ListOccupyingByRoom(txCtx, req.HotelID, req.RoomID, ptr.Ptr(booking.ID))
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list occupying bookings: %v", err)
			return fmt.Errorf("%w: failed to list occupying bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FirstOverlapping(occupying, req.CheckIn, req.CheckOut); conflict != nil {
			uc.logger.Warn("UpdateBooking: room id=%d not available, conflicts with booking id=%d",
				req.RoomID, conflict.ID)
			return ErrRoomNotAvailable
		}

		// 5. Пересчитываем цену по новым датам и комнате
		nights := decimal.NewFromInt(int64(int(req.CheckOut.Sub(req.CheckIn).Hours() / 24)))
		totalPrice := room.NightlyPrice().Mul(nights)

		if err := uc.bookingRepo.UpdateStay(txCtx, req.HotelID, booking.ID, req.RoomID, req.CheckIn, req.CheckOut, totalPrice); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.RoomID = req.RoomID
		booking.CheckIn = req.CheckIn
		booking.CheckOut = req.CheckOut
		booking.TotalPrice = totalPrice
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, total=%s",
		result.ID, result.TotalPrice.String())

	return fromDomain(result), nil
}

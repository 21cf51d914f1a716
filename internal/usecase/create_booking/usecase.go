package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/internal/integrations/gueststore"
	roomRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/room"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	guestClient GuestStoreClient
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestClient GuestStoreClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestClient: guestClient,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись выполняются в одной сериализуемой
// транзакции: из двух конкурентных запросов на одну комнату и
// пересекающиеся даты ровно один завершается успехом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: hotel=%d, room=%d, guest=%d, checkIn=%s, checkOut=%s",
		req.HotelID, req.RoomID, req.GuestID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование гостя во внешнем справочнике.
	// Недоступность справочника не блокирует бронирование.
	if _, err := uc.guestClient.GetGuestWithGracefulDegradation(ctx, req.HotelID, req.GuestID); err != nil {
		if errors.Is(err, gueststore.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found in hotel=%d", req.GuestID, req.HotelID)
			return nil, ErrGuestNotFound
		}
		if !errors.Is(err, gueststore.ErrServiceDegraded) {
			uc.logger.Error("CreateBooking: guest lookup failed: %v", err)
			return nil, fmt.Errorf("%w: guest lookup failed: %v", ErrInternal, err)
		}
		// graceful degradation: идем дальше с guest_id как есть
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем комнату с блокировкой строки
		room, err := uc.roomRepo.GetByID(txCtx, req.HotelID, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found in hotel=%d", req.RoomID, req.HotelID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Комнаты на обслуживании исключены из доступности независимо от дат
		if room.IsUnderMaintenance() {
			uc.logger.Warn("CreateBooking: room id=%d is under maintenance", req.RoomID)
			return ErrRoomInMaintenance
		}

		// 3.3. Получаем все занимающие комнату бронирования с блокировкой (FOR UPDATE)
		occupying, err := uc.bookingRepo.ListOccupyingByRoom(txCtx, req.HotelID, req.RoomID, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list occupying bookings: %v", err)
			return fmt.Errorf("%w: failed to list occupying bookings: %v", ErrInternal, err)
		}

		// 3.4. Проверяем пересечение дат
		if conflict := domain.FirstOverlapping(occupying, req.CheckIn, req.CheckOut); conflict != nil {
			uc.logger.Warn("CreateBooking: room id=%d not available, conflicts with booking id=%d",
				req.RoomID, conflict.ID)
			return ErrRoomNotAvailable
		}

		// 3.5. Цена фиксируется на момент создания: ночи × базовая цена типа комнаты
		nights := decimal.NewFromInt(int64(int(req.CheckOut.Sub(req.CheckIn).Hours() / 24)))
		totalPrice := room.NightlyPrice().Mul(nights)

		booking := &domain.Booking{
			HotelID:    req.HotelID,
			RoomID:     req.RoomID,
			GuestID:    req.GuestID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			TotalPrice: totalPrice,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s",
		result.ID, result.TotalPrice.String())

	return fromDomain(result), nil
}

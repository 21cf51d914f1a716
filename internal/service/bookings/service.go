package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	"github.com/m0rzh/HMS-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований.
// Запись (создание, изменение, переходы статусов) живет в usecase-слое,
// здесь остаются операции без многошаговых инвариантов.
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID в рамках отеля
func (s *Service) GetByID(ctx context.Context, hotelID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for hotel=%d", id, hotelID)

	booking, err := s.bookingRepo.GetByID(ctx, hotelID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование.
// Допустимо только для pending и cancelled: бронирование, затронувшее
// проживание или финансы, остается в истории.
func (s *Service) Delete(ctx context.Context, hotelID, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d for hotel=%d", id, hotelID)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, hotelID, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Delete: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeDeleted() {
			s.logger.Warn("Delete: booking id=%d in status %s cannot be deleted", id, booking.Status)
			return ErrCannotDelete
		}

		if err := s.bookingRepo.Delete(txCtx, hotelID, id); err != nil {
			s.logger.Error("Delete: failed to delete booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Delete: booking id=%d deleted", id)
		return nil
	})
}

// Planning возвращает шахматку: все комнаты отеля и неотмененные
// бронирования, пересекающие период
func (s *Service) Planning(ctx context.Context, req *models.PlanningRequest) (*models.PlanningResponse, error) {
	s.logger.Info("Planning: hotel=%d, from=%s, to=%s",
		req.HotelID, req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))

	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() || !req.From.Before(req.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	rooms, err := s.roomRepo.List(ctx, req.HotelID)
	if err != nil {
		s.logger.Error("Planning: failed to list rooms for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Planning - failed to list rooms: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListForRange(ctx, req.HotelID, req.From, req.To)
	if err != nil {
		s.logger.Error("Planning: failed to list bookings for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Planning - failed to list bookings: %v", ErrInternal, err)
	}

	s.logger.Info("Planning: hotel=%d, %d rooms, %d bookings", req.HotelID, len(rooms), len(bookings))

	return &models.PlanningResponse{
		From:     req.From,
		To:       req.To,
		Rooms:    models.FromDomainRoomList(rooms),
		Bookings: models.FromDomainBookingList(bookings),
	}, nil
}

// ListRooms возвращает все комнаты отеля
func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]*models.RoomResponse, error) {
	s.logger.Info("ListRooms: hotel=%d", hotelID)

	rooms, err := s.roomRepo.List(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListRooms: failed to list rooms for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

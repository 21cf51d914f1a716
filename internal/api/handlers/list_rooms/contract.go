package list_rooms

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListRooms(ctx context.Context, hotelID int64) ([]*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_planning

import (
	"context"

	"github.com/m0rzh/HMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Planning(ctx context.Context, req *models.PlanningRequest) (*models.PlanningResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"fmt"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Ошибки валидации отклоняются до любых обращений к БД.
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Полуоткрытый интервал [checkIn, checkOut): выезд строго позже заезда
	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidDateRange
	}

	nights := int(req.CheckOut.Sub(req.CheckIn).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

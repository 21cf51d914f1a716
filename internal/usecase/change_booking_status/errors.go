package change_booking_status

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_booking_status: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках отеля
	ErrBookingNotFound = errors.New("change_booking_status: booking not found")

	// ErrInvalidTransition возвращается для перехода, отсутствующего
	// в таблице переходов стейт-машины
	ErrInvalidTransition = errors.New("change_booking_status: invalid status transition")

	// ErrBookingHasDue возвращается при попытке выселения с незакрытым балансом
	ErrBookingHasDue = errors.New("change_booking_status: booking has outstanding balance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_booking_status: internal error")
)

// DueError ошибка выселения с долгом, несет сумму к оплате.
// Разворачивается в ErrBookingHasDue для errors.Is, сумма
// извлекается через errors.As.
type DueError struct {
	Due decimal.Decimal
}

// Error реализует error
func (e *DueError) Error() string {
	return fmt.Sprintf("change_booking_status: booking has outstanding balance of %s", e.Due.String())
}

// Unwrap позволяет errors.Is(err, ErrBookingHasDue)
func (e *DueError) Unwrap() error {
	return ErrBookingHasDue
}

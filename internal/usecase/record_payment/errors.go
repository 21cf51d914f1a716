package record_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках отеля
	ErrBookingNotFound = errors.New("record_payment: booking not found")

	// ErrBookingLocked возвращается при попытке провести платеж
	// по отмененному бронированию
	ErrBookingLocked = errors.New("record_payment: booking is cancelled")

	// ErrAmountExceedsBalance возвращается, когда завершенный платеж
	// превысил бы остаток к оплате
	ErrAmountExceedsBalance = errors.New("record_payment: amount exceeds outstanding balance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_payment: internal error")
)

package charges

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrChargeNotFound возвращается, когда начисление не найдено
	ErrChargeNotFound = errors.New("charge not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingCancelled возвращается при попытке начисления
	// на отмененное бронирование
	ErrBookingCancelled = errors.New("booking is cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

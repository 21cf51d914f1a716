package gueststore

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в справочнике
	ErrGuestNotFound = errors.New("guest not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gueststore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gueststore client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что справочник гостей недоступен и бронирование можно
	// продолжить без проверки существования гостя.
	ErrServiceDegraded = errors.New("gueststore unavailable: graceful degradation applied")
)

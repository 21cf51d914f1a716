package update_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_payment: invalid input data")

	// ErrPaymentNotFound возвращается, когда платеж не найден в рамках отеля
	ErrPaymentNotFound = errors.New("update_payment: payment not found")

	// ErrAmountExceedsBalance возвращается, когда измененный завершенный
	// платеж превысил бы остаток к оплате
	ErrAmountExceedsBalance = errors.New("update_payment: amount exceeds outstanding balance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_payment: internal error")
)

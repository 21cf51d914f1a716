package create_daily_close

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_daily_close: invalid input data")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_daily_close: hotel not found")

	// ErrDailyCloseExists возвращается при повторном закрытии того же дня
	ErrDailyCloseExists = errors.New("create_daily_close: daily close already exists for this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_daily_close: internal error")
)

package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда check-out не позже check-in
	ErrInvalidDateRange = errors.New("update_booking: check-out must be after check-in")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках отеля
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingLocked возвращается при попытке изменить бронирование
	// после заселения, выезда или отмены
	ErrBookingLocked = errors.New("update_booking: booking can no longer be edited")

	// ErrRoomNotFound возвращается, когда комната не найдена в рамках отеля
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrRoomInMaintenance возвращается, когда комната на обслуживании
	ErrRoomInMaintenance = errors.New("update_booking: room is under maintenance")

	// ErrRoomNotAvailable возвращается при пересечении дат с другим бронированием
	ErrRoomNotAvailable = errors.New("update_booking: room is not available for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

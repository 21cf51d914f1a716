package move_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках отеля
	ErrBookingNotFound = errors.New("move_booking: booking not found")

	// ErrBookingLocked возвращается при попытке переселить бронирование
	// после заселения, выезда или отмены
	ErrBookingLocked = errors.New("move_booking: booking can no longer be moved")

	// ErrSameRoom возвращается при переселении в ту же комнату
	ErrSameRoom = errors.New("move_booking: target room is the same as the current one")

	// ErrRoomNotFound возвращается, когда целевая комната не найдена в рамках отеля
	ErrRoomNotFound = errors.New("move_booking: target room not found")

	// ErrRoomInMaintenance возвращается, когда целевая комната на обслуживании
	ErrRoomInMaintenance = errors.New("move_booking: target room is under maintenance")

	// ErrRoomNotAvailable возвращается при пересечении дат с другим
	// бронированием в целевой комнате
	ErrRoomNotAvailable = errors.New("move_booking: target room is not available for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_booking: internal error")
)

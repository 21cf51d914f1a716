package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда check-out не позже check-in
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrRoomNotFound возвращается, когда комната не найдена в рамках отеля
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInMaintenance возвращается, когда комната на обслуживании
	// и исключена из доступности независимо от дат
	ErrRoomInMaintenance = errors.New("create_booking: room is under maintenance")

	// ErrRoomNotAvailable возвращается, когда даты пересекаются
	// с существующим неотмененным бронированием комнаты
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for these dates")

	// ErrGuestNotFound возвращается, когда гость не найден в справочнике
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

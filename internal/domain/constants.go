package domain

import "errors"

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, check-in/check-out are dates without time
)

// Business validation constants
const (
	MaxStayNights         = 365
	MaxDescriptionLength  = 500
	MaxNotesLength        = 500
	MinChargeQuantity     = 1
	MaxChargeQuantity     = 1000
)

// Typed errors for closed enums. Unknown values are rejected at the boundary
// so no downstream code ever normalizes status strings.
var (
	ErrUnknownBookingStatus  = errors.New("domain: unknown booking status")
	ErrUnknownRoomStatus     = errors.New("domain: unknown room status")
	ErrUnknownPaymentMethod  = errors.New("domain: unknown payment method")
	ErrUnknownPaymentStatus  = errors.New("domain: unknown payment status")
	ErrUnknownChargeCategory = errors.New("domain: unknown charge category")
)

// OccupancyStatuses список статусов, учитываемых при проверке доступности.
// Все неотмененные бронирования занимают комнату на свои даты,
// включая исторические checked_out.
var OccupancyStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}

// DeletableStatuses список статусов, из которых допустимо физическое удаление
var DeletableStatuses = []BookingStatus{
	StatusPending,
	StatusCancelled,
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus parses a booking status, rejecting unknown values
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", ErrUnknownBookingStatus
	}
}

// transitions is the closed transition table of the booking state machine.
// checked_out and cancelled are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// Booking represents a guest's stay in a room over a half-open date range
// [CheckIn, CheckOut). CheckOut is exclusive: a booking ending on a date does
// not conflict with one starting on that same date.
type Booking struct {
	ID         int64
	HotelID    int64
	RoomID     int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice decimal.Decimal // nights × room-type base price at creation/move time
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// OccupiesRoom returns true if the booking counts toward room occupancy.
// All non-cancelled bookings occupy their room for their date range,
// including historical checked_out stays.
func (b *Booking) OccupiesRoom() bool {
	return b.Status != StatusCancelled
}

// Overlaps reports whether the booking's date range intersects [checkIn, checkOut)
// under half-open interval semantics.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

// CanTransitionTo reports whether the state machine permits the transition.
// Guards (checkout due gate) are enforced by the caller on top of this table.
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the booking has no outgoing transitions
func (b *Booking) IsTerminal() bool {
	return len(transitions[b.Status]) == 0
}

// CanBeEdited returns true if dates and room assignment may still change
func (b *Booking) CanBeEdited() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeMoved returns true if the booking may be reassigned to another room
func (b *Booking) CanBeMoved() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeDeleted returns true if hard deletion is permitted
func (b *Booking) CanBeDeleted() bool {
	return b.Status == StatusPending || b.Status == StatusCancelled
}

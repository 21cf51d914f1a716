package domain

import "time"

// FirstOverlapping returns the first booking whose date range intersects
// [checkIn, checkOut), or nil when the range is free. Cancelled bookings
// never occupy a room; every other status does, including historical
// checked_out stays.
//
// This is the single authoritative overlap check: creation, date edits and
// room reassignment all go through it. Any client-side pre-check is a
// non-authoritative hint.
func FirstOverlapping(bookings []*Booking, checkIn, checkOut time.Time) *Booking {
	for _, b := range bookings {
		if !b.OccupiesRoom() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return b
		}
	}
	return nil
}

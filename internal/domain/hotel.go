package domain

import (
	"time"
)

// Hotel represents a tenant. Every entity in the system carries a HotelID
// and is never visible or mutable across tenant boundaries.
type Hotel struct {
	ID       int64
	Code     string
	Name     string
	Timezone string // IANA name, e.g. "Europe/Madrid"; defines the tenant's calendar day

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the tenant's timezone.
// Falls back to UTC when the timezone is empty or unknown.
func (h *Hotel) Location() *time.Location {
	if h.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

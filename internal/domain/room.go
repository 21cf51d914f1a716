package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// ParseRoomStatus parses a room status, rejecting unknown values
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return RoomStatus(s), nil
	default:
		return "", ErrUnknownRoomStatus
	}
}

// RoomType groups rooms sharing a name and a base nightly price
type RoomType struct {
	ID        int64
	HotelID   int64
	Name      string
	BasePrice decimal.Decimal // per night
}

// Room represents a hotel room
type Room struct {
	ID       int64
	HotelID  int64
	Number   string
	Floor    int
	Status   RoomStatus
	RoomType *RoomType // optional; rooms without a type cannot be priced

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnderMaintenance returns true if the room is excluded from availability
// regardless of date range
func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomMaintenance
}

// NightlyPrice returns the base nightly price of the room's type.
// Rooms without a room type are priced at zero.
func (r *Room) NightlyPrice() decimal.Decimal {
	if r.RoomType == nil {
		return decimal.Zero
	}
	return r.RoomType.BasePrice
}

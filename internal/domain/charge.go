package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeCategory represents the kind of an ad-hoc consumption entry
type ChargeCategory string

const (
	ChargeMinibar ChargeCategory = "minibar"
	ChargeService ChargeCategory = "service"
	ChargeLaundry ChargeCategory = "laundry"
	ChargeOther   ChargeCategory = "other"
)

// ParseChargeCategory parses a charge category, rejecting unknown values
func ParseChargeCategory(s string) (ChargeCategory, error) {
	switch ChargeCategory(s) {
	case ChargeMinibar, ChargeService, ChargeLaundry, ChargeOther:
		return ChargeCategory(s), nil
	default:
		return "", ErrUnknownChargeCategory
	}
}

// Charge represents an ad-hoc consumption entry posted to a booking.
// Charges are additive to the booking's financial total.
type Charge struct {
	ID          int64
	HotelID     int64
	BookingID   int64
	RoomID      int64
	Category    ChargeCategory
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total returns quantity × unit price
func (c *Charge) Total() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

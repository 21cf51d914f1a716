package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

// PaymentMethods lists all known payment methods in a stable order.
// Used for per-method aggregation in daily close snapshots.
var PaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodTransfer}

// ParsePaymentMethod parses a payment method, rejecting unknown values
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCard, MethodTransfer:
		return PaymentMethod(s), nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ParsePaymentStatus parses a payment status, rejecting unknown values
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return PaymentStatus(s), nil
	default:
		return "", ErrUnknownPaymentStatus
	}
}

// Payment represents a manually recorded payment against a booking.
// Only completed payments count toward amount paid.
type Payment struct {
	ID        int64
	HotelID   int64
	BookingID int64
	Amount    decimal.Decimal // > 0
	Method    PaymentMethod
	Status    PaymentStatus
	PaidAt    time.Time // effective date, used for daily close grouping

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the payment counts toward amount paid
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentCompleted
}

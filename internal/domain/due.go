package domain

import "github.com/shopspring/decimal"

// DueStatement is the single source of truth for a booking's financial state:
// due = totalPrice + Σ charges − Σ completed payments.
// Always re-derived from source rows, never cached.
type DueStatement struct {
	BookingID     int64
	TotalPrice    decimal.Decimal
	ChargesTotal  decimal.Decimal
	PaidCompleted decimal.Decimal
	Due           decimal.Decimal
}

// ComputeDue derives the due statement from a booking and its source rows
func ComputeDue(booking *Booking, charges []*Charge, payments []*Payment) DueStatement {
	chargesTotal := decimal.Zero
	for _, c := range charges {
		chargesTotal = chargesTotal.Add(c.Total())
	}

	paid := decimal.Zero
	for _, p := range payments {
		if p.IsCompleted() {
			paid = paid.Add(p.Amount)
		}
	}

	return DueStatement{
		BookingID:     booking.ID,
		TotalPrice:    booking.TotalPrice,
		ChargesTotal:  chargesTotal,
		PaidCompleted: paid,
		Due:           booking.TotalPrice.Add(chargesTotal).Sub(paid),
	}
}

// IsSettled returns true if nothing is owed on the booking
func (d DueStatement) IsSettled() bool {
	return d.Due.LessThanOrEqual(decimal.Zero)
}

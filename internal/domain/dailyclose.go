package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// DailyClose is an immutable end-of-day financial snapshot: the aggregate of
// completed payments for one tenant-local calendar day. At most one exists per
// (hotel, date); once created it is never updated or deleted — corrections
// happen through adjusting charges and payments going forward.
type DailyClose struct {
	ID             int64
	HotelID        int64
	DateKey        types.DateKey
	TotalCompleted decimal.Decimal
	CountCompleted int
	ByMethod       map[PaymentMethod]decimal.Decimal
	Notes          *string
	CreatedBy      int64
	CreatedAt      time.Time
}

// AggregatePayments builds the snapshot figures from completed payments.
// The same computation backs both the persisted close and the read-only preview.
func AggregatePayments(payments []*Payment) (total decimal.Decimal, count int, byMethod map[PaymentMethod]decimal.Decimal) {
	total = decimal.Zero
	byMethod = make(map[PaymentMethod]decimal.Decimal, len(PaymentMethods))
	for _, m := range PaymentMethods {
		byMethod[m] = decimal.Zero
	}

	for _, p := range payments {
		if !p.IsCompleted() {
			continue
		}
		total = total.Add(p.Amount)
		count++
		byMethod[p.Method] = byMethod[p.Method].Add(p.Amount)
	}

	return total, count, byMethod
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeDue(t *testing.T) {
	booking := &Booking{ID: 7, TotalPrice: dec("2000")}

	t.Run("no charges no payments", func(t *testing.T) {
		due := ComputeDue(booking, nil, nil)
		assert.Equal(t, int64(7), due.BookingID)
		assert.True(t, due.Due.Equal(dec("2000")))
		assert.False(t, due.IsSettled())
	})

	t.Run("charges add, completed payments subtract", func(t *testing.T) {
		charges := []*Charge{
			{Quantity: 2, UnitPrice: dec("150")}, // 300
			{Quantity: 1, UnitPrice: dec("50.50")},
		}
		payments := []*Payment{
			{Amount: dec("2000"), Status: PaymentCompleted},
			{Amount: dec("100"), Status: PaymentPending},  // ignored
			{Amount: dec("9999"), Status: PaymentFailed},  // ignored
			{Amount: dec("350.50"), Status: PaymentCompleted},
		}

		due := ComputeDue(booking, charges, payments)
		assert.True(t, due.ChargesTotal.Equal(dec("350.50")))
		assert.True(t, due.PaidCompleted.Equal(dec("2350.50")))
		assert.True(t, due.Due.Equal(decimal.Zero))
		assert.True(t, due.IsSettled())
	})

	t.Run("overpayment settles with negative due", func(t *testing.T) {
		payments := []*Payment{{Amount: dec("2500"), Status: PaymentCompleted}}
		due := ComputeDue(booking, nil, payments)
		assert.True(t, due.Due.Equal(dec("-500")))
		assert.True(t, due.IsSettled())
	})

	t.Run("partial payment leaves due", func(t *testing.T) {
		payments := []*Payment{{Amount: dec("1500"), Status: PaymentCompleted}}
		due := ComputeDue(booking, nil, payments)
		assert.True(t, due.Due.Equal(dec("500")))
		assert.False(t, due.IsSettled())
	})
}

func TestChargeTotal(t *testing.T) {
	c := &Charge{Quantity: 3, UnitPrice: dec("12.50")}
	assert.True(t, c.Total().Equal(dec("37.50")))
}

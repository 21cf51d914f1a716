package update_payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ int64) (*domain.Booking, error) {
	return f.booking, nil
}

type fakeChargeRepo struct {
	charges []*domain.Charge
}

func (f *fakeChargeRepo) ListByBooking(_ context.Context, _, _ int64) ([]*domain.Charge, error) {
	return f.charges, nil
}

type fakePaymentRepo struct {
	payment  *domain.Payment
	payments []*domain.Payment
	err      error
	updated  *domain.Payment
}

func (f *fakePaymentRepo) GetByID(_ context.Context, _, _ int64) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := *f.payment
	return &p, nil
}

func (f *fakePaymentRepo) ListByBooking(_ context.Context, _, _ int64) ([]*domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	f.updated = p
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	payments *fakePaymentRepo
	uc       *UseCase
}

// booking total 2000, the edited payment is 500 completed, plus another
// completed payment of 1000: due excluding the edited payment is 1000.
func newFixture() *fixture {
	edited := &domain.Payment{
		ID:        100,
		HotelID:   1,
		BookingID: 3,
		Amount:    dec("500"),
		Method:    domain.MethodCash,
		Status:    domain.PaymentCompleted,
		PaidAt:    time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	other := &domain.Payment{
		ID:        101,
		HotelID:   1,
		BookingID: 3,
		Amount:    dec("1000"),
		Status:    domain.PaymentCompleted,
	}

	f := &fixture{
		payments: &fakePaymentRepo{
			payment:  edited,
			payments: []*domain.Payment{edited, other},
		},
	}
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:         3,
		HotelID:    1,
		TotalPrice: dec("2000"),
		Status:     domain.StatusCheckedIn,
	}}
	f.uc = NewUseCase(bookings, &fakeChargeRepo{}, f.payments, fakeTxManager{}, nopLogger{})
	return f
}

func request(amount string) *Request {
	return &Request{
		HotelID:   1,
		PaymentID: 100,
		Amount:    dec(amount),
		Method:    "card",
		Status:    "completed",
	}
}

func TestExecute_EditDownAlwaysAllowed(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request("200"))
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(dec("200")))
	assert.Equal(t, "card", resp.Method)

	require.NotNil(t, f.payments.updated)
	assert.True(t, f.payments.updated.Amount.Equal(dec("200")))
}

func TestExecute_EditUpToRemainingDue(t *testing.T) {
	f := newFixture()

	// due excluding this payment is 1000, so raising 500 -> 1000 is fine
	resp, err := f.uc.Execute(context.Background(), request("1000"))
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(dec("1000")))
}

func TestExecute_EditUpBeyondDueRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("1001"))
	assert.ErrorIs(t, err, ErrAmountExceedsBalance)
	assert.Nil(t, f.payments.updated)
}

func TestExecute_MarkingPendingSkipsBalanceCheck(t *testing.T) {
	f := newFixture()

	req := request("5000")
	req.Status = "pending"
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_ZeroPaidAtKeepsOriginal(t *testing.T) {
	f := newFixture()
	original := f.payments.payment.PaidAt

	resp, err := f.uc.Execute(context.Background(), request("200"))
	require.NoError(t, err)
	assert.Equal(t, original, resp.PaidAt)
}

func TestExecute_ExplicitPaidAtApplied(t *testing.T) {
	f := newFixture()
	newPaidAt := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

	req := request("200")
	req.PaidAt = newPaidAt
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, newPaidAt, resp.PaidAt)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero amount", func(r *Request) { r.Amount = decimal.Zero }},
		{"unknown method", func(r *Request) { r.Method = "barter" }},
		{"missing status", func(r *Request) { r.Status = "" }},
		{"zero payment id", func(r *Request) { r.PaymentID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("200")
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

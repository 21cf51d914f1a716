package change_booking_status

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	err           error
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = status
	return nil
}

type fakeRoomRepo struct {
	updatedStatus domain.RoomStatus
	updatedRoomID int64
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, _, roomID int64, status domain.RoomStatus) error {
	f.updatedRoomID = roomID
	f.updatedStatus = status
	return nil
}

type fakeChargeRepo struct {
	charges []*domain.Charge
}

func (f *fakeChargeRepo) ListByBooking(_ context.Context, _, _ int64) ([]*domain.Charge, error) {
	return f.charges, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) ListByBooking(_ context.Context, _, _ int64) ([]*domain.Payment, error) {
	return f.payments, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	transitions []string
}

func (f *fakeMetrics) IncBookingStatusTransition(toStatus string) {
	f.transitions = append(f.transitions, toStatus)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	bookings *fakeBookingRepo
	rooms    *fakeRoomRepo
	charges  *fakeChargeRepo
	payments *fakePaymentRepo
	metrics  *fakeMetrics
	uc       *UseCase
}

func newFixture(status domain.BookingStatus) *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{booking: &domain.Booking{
			ID:         3,
			HotelID:    1,
			RoomID:     10,
			TotalPrice: dec("2000"),
			Status:     status,
		}},
		rooms:    &fakeRoomRepo{},
		charges:  &fakeChargeRepo{},
		payments: &fakePaymentRepo{},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.rooms, f.charges, f.payments, fakeTxManager{}, f.metrics, nopLogger{})
	return f
}

func request(newStatus string) *Request {
	return &Request{HotelID: 1, BookingID: 3, NewStatus: newStatus}
}

func TestExecute_ConfirmPending(t *testing.T) {
	f := newFixture(domain.StatusPending)

	resp, err := f.uc.Execute(context.Background(), request("confirmed"))
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, f.bookings.updatedStatus)
	assert.Equal(t, []string{"confirmed"}, f.metrics.transitions)
	// no room status change on confirm
	assert.Zero(t, f.rooms.updatedRoomID)
}

func TestExecute_CheckInOccupiesRoom(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	resp, err := f.uc.Execute(context.Background(), request("checked_in"))
	require.NoError(t, err)
	assert.Equal(t, "checked_in", resp.Status)
	assert.Equal(t, int64(10), f.rooms.updatedRoomID)
	assert.Equal(t, domain.RoomOccupied, f.rooms.updatedStatus)
}

func TestExecute_InvalidTransition(t *testing.T) {
	tests := []struct {
		from domain.BookingStatus
		to   string
	}{
		{domain.StatusPending, "checked_in"},
		{domain.StatusPending, "checked_out"},
		{domain.StatusConfirmed, "pending"},
		{domain.StatusCheckedIn, "cancelled"},
		{domain.StatusCheckedOut, "checked_in"},
		{domain.StatusCancelled, "confirmed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+tt.to, func(t *testing.T) {
			f := newFixture(tt.from)
			_, err := f.uc.Execute(context.Background(), request(tt.to))
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, f.bookings.updatedStatus)
		})
	}
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	f := newFixture(domain.StatusPending)
	_, err := f.uc.Execute(context.Background(), request("archived"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CheckoutBlockedByDue(t *testing.T) {
	f := newFixture(domain.StatusCheckedIn)
	f.charges.charges = []*domain.Charge{{Quantity: 1, UnitPrice: dec("500")}}
	f.payments.payments = []*domain.Payment{{Amount: dec("2000"), Status: domain.PaymentCompleted}}

	_, err := f.uc.Execute(context.Background(), request("checked_out"))
	require.ErrorIs(t, err, ErrBookingHasDue)

	var dueErr *DueError
	require.True(t, errors.As(err, &dueErr))
	assert.True(t, dueErr.Due.Equal(dec("500")))
	assert.Empty(t, f.bookings.updatedStatus)
}

func TestExecute_CheckoutSucceedsWhenSettled(t *testing.T) {
	f := newFixture(domain.StatusCheckedIn)
	f.charges.charges = []*domain.Charge{{Quantity: 1, UnitPrice: dec("500")}}
	f.payments.payments = []*domain.Payment{{Amount: dec("2500"), Status: domain.PaymentCompleted}}

	resp, err := f.uc.Execute(context.Background(), request("checked_out"))
	require.NoError(t, err)
	assert.Equal(t, "checked_out", resp.Status)
	assert.Equal(t, domain.RoomAvailable, f.rooms.updatedStatus)
}

func TestExecute_PendingPaymentDoesNotSettle(t *testing.T) {
	f := newFixture(domain.StatusCheckedIn)
	f.payments.payments = []*domain.Payment{{Amount: dec("2000"), Status: domain.PaymentPending}}

	_, err := f.uc.Execute(context.Background(), request("checked_out"))
	assert.ErrorIs(t, err, ErrBookingHasDue)
}

func TestExecute_CancelFromConfirmed(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	resp, err := f.uc.Execute(context.Background(), request("cancelled"))
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	// cancellation never touches the room status
	assert.Zero(t, f.rooms.updatedRoomID)
}

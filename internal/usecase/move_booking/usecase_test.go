package move_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	roomRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/room"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	occupying []*domain.Booking

	excludeID    *int64
	updatedRoom  int64
	updatedPrice decimal.Decimal
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ int64) (*domain.Booking, error) {
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) ListOccupyingByRoom(_ context.Context, _, _ int64, excludeID *int64) ([]*domain.Booking, error) {
	f.excludeID = excludeID
	return f.occupying, nil
}

func (f *fakeBookingRepo) UpdateStay(_ context.Context, _, _ int64, roomID int64, _, _ time.Time, totalPrice decimal.Decimal) error {
	f.updatedRoom = roomID
	f.updatedPrice = totalPrice
	return nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	moved int
}

func (f *fakeMetrics) IncBookingMoved() { f.moved++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         3,
		HotelID:    1,
		RoomID:     10,
		CheckIn:    date(2026, 3, 10),
		CheckOut:   date(2026, 3, 12),
		TotalPrice: dec("2000"),
		Status:     domain.StatusConfirmed,
	}
}

func targetRoom() *domain.Room {
	return &domain.Room{
		ID:      20,
		HotelID: 1,
		Number:  "201",
		Status:  domain.RoomAvailable,
		RoomType: &domain.RoomType{
			Name:      "Deluxe",
			BasePrice: dec("1200"),
		},
	}
}

func TestExecute_MoveRecomputesPrice(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	metrics := &fakeMetrics{}
	uc := NewUseCase(bookings, &fakeRoomRepo{room: targetRoom()}, fakeTxManager{}, metrics, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
	require.NoError(t, err)

	// 2 nights at the target room's 1200 per night
	assert.True(t, resp.TotalPrice.Equal(dec("2400")))
	assert.Equal(t, int64(20), resp.RoomID)
	assert.Equal(t, int64(20), bookings.updatedRoom)
	assert.True(t, bookings.updatedPrice.Equal(dec("2400")))
	assert.Equal(t, 1, metrics.moved)

	// overlap check must exclude the booking itself
	require.NotNil(t, bookings.excludeID)
	assert.Equal(t, int64(3), *bookings.excludeID)
}

func TestExecute_DatesUnchanged(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	uc := NewUseCase(bookings, &fakeRoomRepo{room: targetRoom()}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 10), resp.CheckIn)
	assert.Equal(t, date(2026, 3, 12), resp.CheckOut)
}

func TestExecute_SameRoomRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	uc := NewUseCase(bookings, &fakeRoomRepo{room: targetRoom()}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 10})
	assert.ErrorIs(t, err, ErrSameRoom)
}

func TestExecute_LockedAfterCheckIn(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			booking := testBooking()
			booking.Status = status
			bookings := &fakeBookingRepo{booking: booking}
			uc := NewUseCase(bookings, &fakeRoomRepo{room: targetRoom()}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
			assert.ErrorIs(t, err, ErrBookingLocked)
		})
	}
}

func TestExecute_TargetRoomConflict(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking: testBooking(),
		occupying: []*domain.Booking{
			{ID: 8, RoomID: 20, CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 14), Status: domain.StatusPending},
		},
	}
	uc := NewUseCase(bookings, &fakeRoomRepo{room: targetRoom()}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Zero(t, bookings.updatedRoom)
}

func TestExecute_TargetRoomInMaintenance(t *testing.T) {
	room := targetRoom()
	room.Status = domain.RoomMaintenance
	uc := NewUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeRoomRepo{room: room}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
	assert.ErrorIs(t, err, ErrRoomInMaintenance)
}

func TestExecute_TargetRoomNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, fakeTxManager{}, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 1, BookingID: 3, NewRoomID: 20})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

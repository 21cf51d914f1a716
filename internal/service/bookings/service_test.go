package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	"github.com/m0rzh/HMS-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	err      error
	deleted  bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingRepo) ListForRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, _, _ int64) error {
	f.deleted = true
	return nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, _ int64) ([]*domain.Room, error) {
	return f.rooms, nil
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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:         3,
		HotelID:    1,
		RoomID:     10,
		CheckIn:    date(2026, 3, 10),
		CheckOut:   date(2026, 3, 12),
		TotalPrice: dec("2000"),
		Status:     domain.StatusConfirmed,
	}}
	svc := NewService(repo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 2, resp.Nights)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_AllowedStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{booking: &domain.Booking{ID: 3, Status: status}}
			svc := NewService(repo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

			require.NoError(t, svc.Delete(context.Background(), 1, 3))
			assert.True(t, repo.deleted)
		})
	}
}

func TestDelete_BlockedStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCheckedIn, domain.StatusCheckedOut} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{booking: &domain.Booking{ID: 3, Status: status}}
			svc := NewService(repo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

			err := svc.Delete(context.Background(), 1, 3)
			assert.ErrorIs(t, err, ErrCannotDelete)
			assert.False(t, repo.deleted)
		})
	}
}

func TestPlanning(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 3, RoomID: 10, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12), Status: domain.StatusConfirmed},
	}}
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 10, Number: "101", Floor: 1, Status: domain.RoomAvailable,
			RoomType: &domain.RoomType{Name: "Standard", BasePrice: dec("1000")}},
		{ID: 20, Number: "201", Floor: 2, Status: domain.RoomMaintenance},
	}}
	svc := NewService(repo, rooms, fakeTxManager{}, nopLogger{})

	resp, err := svc.Planning(context.Background(), &models.PlanningRequest{
		HotelID: 1,
		From:    date(2026, 3, 1),
		To:      date(2026, 4, 1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	require.Len(t, resp.Bookings, 1)

	require.NotNil(t, resp.Rooms[0].TypeName)
	assert.Equal(t, "Standard", *resp.Rooms[0].TypeName)
	assert.Nil(t, resp.Rooms[1].TypeName)
}

func TestPlanning_InvalidRange(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Planning(context.Background(), &models.PlanningRequest{
		HotelID: 1,
		From:    date(2026, 4, 1),
		To:      date(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	roomRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/room"
	"github.com/m0rzh/HMS-BookingService/internal/integrations/gueststore"
)

type fakeBookingRepo struct {
	occupying []*domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	stored := *b
	stored.ID = 42
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) ListOccupyingByRoom(_ context.Context, _, _ int64, _ *int64) ([]*domain.Booking, error) {
	return f.occupying, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeGuestClient struct {
	err error
}

func (f *fakeGuestClient) GetGuestWithGracefulDegradation(_ context.Context, hotelID, guestID int64) (*gueststore.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &gueststore.Guest{ID: guestID, HotelID: hotelID}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	created int
}

func (f *fakeMetrics) IncBookingCreated() { f.created++ }

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

func testRoom() *domain.Room {
	return &domain.Room{
		ID:      10,
		HotelID: 1,
		Number:  "101",
		Status:  domain.RoomAvailable,
		RoomType: &domain.RoomType{
			ID:        1,
			HotelID:   1,
			Name:      "Standard",
			BasePrice: dec("1000"),
		},
	}
}

func validRequest() *Request {
	return &Request{
		HotelID:  1,
		RoomID:   10,
		GuestID:  5,
		CheckIn:  date(2026, 3, 10),
		CheckOut: date(2026, 3, 12),
	}
}

func newTestUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo, guests *fakeGuestClient, m *fakeMetrics) *UseCase {
	return NewUseCase(bookings, rooms, guests, fakeTxManager{}, m, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	metrics := &fakeMetrics{}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{}, metrics)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 2 nights at 1000 per night
	assert.True(t, resp.TotalPrice.Equal(dec("2000")))
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 1, metrics.created)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestExecute_RoomNotAvailable(t *testing.T) {
	bookings := &fakeBookingRepo{
		occupying: []*domain.Booking{
			{ID: 7, RoomID: 10, CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 13), Status: domain.StatusConfirmed},
		},
	}
	metrics := &fakeMetrics{}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{}, metrics)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Equal(t, 0, metrics.created)
	assert.Nil(t, bookings.created)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	// existing stay ends exactly on the requested check-in date
	bookings := &fakeBookingRepo{
		occupying: []*domain.Booking{
			{ID: 7, RoomID: 10, CheckIn: date(2026, 3, 8), CheckOut: date(2026, 3, 10), Status: domain.StatusCheckedOut},
		},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(dec("2000")))
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	bookings := &fakeBookingRepo{
		occupying: []*domain.Booking{
			{ID: 7, RoomID: 10, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12), Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_RoomInMaintenance(t *testing.T) {
	room := testRoom()
	room.Status = domain.RoomMaintenance
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: room}, &fakeGuestClient{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomInMaintenance)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, &fakeGuestClient{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_GuestNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{err: gueststore.ErrGuestNotFound}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_GuestStoreDegradedStillBooks(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: testRoom()}, &fakeGuestClient{err: gueststore.ErrServiceDegraded}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.GuestID)
}

func TestExecute_RoomWithoutTypePricedZero(t *testing.T) {
	room := testRoom()
	room.RoomType = nil
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: room}, &fakeGuestClient{}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(decimal.Zero))
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"valid", func(r *Request) {}, nil},
		{"zero hotel", func(r *Request) { r.HotelID = 0 }, ErrInvalidInput},
		{"negative room", func(r *Request) { r.RoomID = -1 }, ErrInvalidInput},
		{"zero guest", func(r *Request) { r.GuestID = 0 }, ErrInvalidInput},
		{"missing dates", func(r *Request) { r.CheckIn = time.Time{} }, ErrInvalidInput},
		{"equal dates", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidDateRange},
		{"inverted dates", func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, ErrInvalidDateRange},
		{"stay too long", func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, domain.MaxStayNights+1) }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := validateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

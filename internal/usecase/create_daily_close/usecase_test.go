package create_daily_close

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	dailycloseRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/dailyclose"
	hotelRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/hotel"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

type fakeHotelRepo struct {
	hotel *domain.Hotel
	err   error
}

func (f *fakeHotelRepo) GetByID(_ context.Context, _ int64) (*domain.Hotel, error) {
	return f.hotel, f.err
}

type fakePaymentRepo struct {
	payments []*domain.Payment
	from, to time.Time
}

func (f *fakePaymentRepo) ListCompletedBetween(_ context.Context, _ int64, from, to time.Time) ([]*domain.Payment, error) {
	f.from, f.to = from, to
	return f.payments, nil
}

type fakeDailyCloseRepo struct {
	existing  *domain.DailyClose
	createErr error
	created   *domain.DailyClose
}

func (f *fakeDailyCloseRepo) Create(_ context.Context, dc *domain.DailyClose) (*domain.DailyClose, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *dc
	stored.ID = 9
	f.created = &stored
	return &stored, nil
}

func (f *fakeDailyCloseRepo) GetByDateKey(_ context.Context, _ int64, _ types.DateKey) (*domain.DailyClose, error) {
	if f.existing != nil {
		return f.existing, nil
	}
	return nil, dailycloseRepo.ErrDailyCloseNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	closes int
}

func (f *fakeMetrics) IncDailyClose() { f.closes++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	hotels   *fakeHotelRepo
	payments *fakePaymentRepo
	closes   *fakeDailyCloseRepo
	metrics  *fakeMetrics
	uc       *UseCase
}

func newFixture(timezone string) *fixture {
	f := &fixture{
		hotels:   &fakeHotelRepo{hotel: &domain.Hotel{ID: 1, Code: "grand", Timezone: timezone}},
		payments: &fakePaymentRepo{},
		closes:   &fakeDailyCloseRepo{},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(f.hotels, f.payments, f.closes, fakeTxManager{}, f.metrics, nopLogger{})
	return f
}

func TestExecute_AggregatesByMethod(t *testing.T) {
	f := newFixture("")
	f.payments.payments = []*domain.Payment{
		{Amount: dec("300"), Method: domain.MethodCash, Status: domain.PaymentCompleted},
		{Amount: dec("700"), Method: domain.MethodCard, Status: domain.PaymentCompleted},
		{Amount: dec("200"), Method: domain.MethodCash, Status: domain.PaymentCompleted},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		HotelID:   1,
		DateKey:   "2026-03-15",
		CreatedBy: 77,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-15", resp.DateKey)
	assert.True(t, resp.TotalCompleted.Equal(dec("1200")))
	assert.Equal(t, 3, resp.CountCompleted)
	assert.True(t, resp.ByMethod["cash"].Equal(dec("500")))
	assert.True(t, resp.ByMethod["card"].Equal(dec("700")))
	assert.True(t, resp.ByMethod["transfer"].Equal(decimal.Zero))
	assert.Equal(t, int64(77), resp.CreatedBy)
	assert.Equal(t, 1, f.metrics.closes)
}

func TestExecute_EmptyDayClosesWithZeros(t *testing.T) {
	f := newFixture("")

	resp, err := f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: "2026-03-15"})
	require.NoError(t, err)
	assert.True(t, resp.TotalCompleted.Equal(decimal.Zero))
	assert.Equal(t, 0, resp.CountCompleted)
}

func TestExecute_DayBoundsUseHotelTimezone(t *testing.T) {
	f := newFixture("Europe/Madrid")
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: "2026-03-15"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, madrid), f.payments.from)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, madrid), f.payments.to)
}

func TestExecute_SecondCloseRejected(t *testing.T) {
	f := newFixture("")
	f.closes.existing = &domain.DailyClose{ID: 8, HotelID: 1, DateKey: "2026-03-15"}

	_, err := f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: "2026-03-15"})
	assert.ErrorIs(t, err, ErrDailyCloseExists)
	assert.Nil(t, f.closes.created)
	assert.Equal(t, 0, f.metrics.closes)
}

func TestExecute_UniqueViolationMapped(t *testing.T) {
	// a concurrent close slipping past the pre-check hits the unique index
	f := newFixture("")
	f.closes.createErr = dailycloseRepo.ErrDailyCloseExists

	_, err := f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: "2026-03-15"})
	assert.ErrorIs(t, err, ErrDailyCloseExists)
}

func TestExecute_HotelNotFound(t *testing.T) {
	f := newFixture("")
	f.hotels.hotel = nil
	f.hotels.err = hotelRepo.ErrHotelNotFound

	_, err := f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: "2026-03-15"})
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestExecute_InvalidDateKey(t *testing.T) {
	f := newFixture("")

	for _, bad := range []string{"", "15.03.2026", "2026-03-32"} {
		_, err := f.uc.Execute(context.Background(), &Request{HotelID: 1, DateKey: bad})
		assert.ErrorIsf(t, err, ErrInvalidInput, "dateKey %q", bad)
	}
}

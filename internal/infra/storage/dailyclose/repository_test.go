package dailyclose

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testClose() *domain.DailyClose {
	return &domain.DailyClose{
		HotelID:        1,
		DateKey:        types.DateKey("2026-03-15"),
		TotalCompleted: decimal.RequireFromString("1200"),
		CountCompleted: 3,
		ByMethod: map[domain.PaymentMethod]decimal.Decimal{
			domain.MethodCash:     decimal.RequireFromString("500"),
			domain.MethodCard:     decimal.RequireFromString("700"),
			domain.MethodTransfer: decimal.Zero,
		},
		CreatedBy: 77,
	}
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO daily_closes \(hotel_id,date_key,total_completed,count_completed,by_method,notes,created_by\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))

	dc, err := repo.Create(context.Background(), testClose())
	require.NoError(t, err)
	assert.Equal(t, int64(9), dc.ID)
	assert.Equal(t, now, dc.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapped(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO daily_closes`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "daily_closes_hotel_id_date_key_key"})

	_, err := repo.Create(context.Background(), testClose())
	assert.ErrorIs(t, err, ErrDailyCloseExists)
}

func TestGetByDateKey(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	byMethodJSON := []byte(`{"cash":"500","card":"700","transfer":"0"}`)
	rows := sqlmock.NewRows([]string{
		"id", "hotel_id", "date_key", "total_completed", "count_completed",
		"by_method", "notes", "created_by", "created_at",
	}).AddRow(int64(9), int64(1), "2026-03-15", "1200", 3, byMethodJSON, nil, int64(77), time.Now())

	mock.ExpectQuery(`SELECT .+ FROM daily_closes WHERE date_key = \$1 AND hotel_id = \$2`).
		WithArgs("2026-03-15", int64(1)).
		WillReturnRows(rows)

	dc, err := repo.GetByDateKey(context.Background(), 1, types.DateKey("2026-03-15"))
	require.NoError(t, err)

	assert.Equal(t, types.DateKey("2026-03-15"), dc.DateKey)
	assert.True(t, dc.TotalCompleted.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, 3, dc.CountCompleted)
	assert.True(t, dc.ByMethod[domain.MethodCash].Equal(decimal.RequireFromString("500")))
	assert.Nil(t, dc.Notes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDateKey_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM daily_closes`).
		WithArgs("2026-03-15", int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByDateKey(context.Background(), 1, types.DateKey("2026-03-15"))
	assert.ErrorIs(t, err, ErrDailyCloseNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "hotel_id", "date_key", "total_completed", "count_completed",
		"by_method", "notes", "created_by", "created_at",
	}).
		AddRow(int64(10), int64(1), "2026-03-16", "300", 1, []byte(`{}`), nil, int64(77), time.Now()).
		AddRow(int64(9), int64(1), "2026-03-15", "1200", 3, []byte(`{}`), nil, int64(77), time.Now())

	mock.ExpectQuery(`SELECT .+ FROM daily_closes WHERE hotel_id = \$1 ORDER BY date_key DESC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	closes, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, closes, 2)
	assert.Equal(t, types.DateKey("2026-03-16"), closes[0].DateKey)
	assert.Equal(t, types.DateKey("2026-03-15"), closes[1].DateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/ptr"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func bookingRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "hotel_id", "room_id", "guest_id", "check_in", "check_out",
		"total_price", "status", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(
			id, int64(1), int64(10), int64(5),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			"2000", "confirmed", time.Now(), time.Now(),
		)
	}
	return rows
}

func TestGetByID_ScopedToHotel(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND id = \$2$`).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(bookingRows(3))

	b, err := repo.GetByID(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("2000")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WithArgs(int64(1), int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_LocksRowInTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND id = \$2 FOR UPDATE`).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(bookingRows(3))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	_, err = repo.GetByID(ctx, 1, 3)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOccupyingByRoom(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND room_id = \$2 AND status IN \(\$3,\$4,\$5,\$6\) ORDER BY check_in ASC`).
		WithArgs(int64(1), int64(10), "pending", "confirmed", "checked_in", "checked_out").
		WillReturnRows(bookingRows(3, 4))

	bookings, err := repo.ListOccupyingByRoom(context.Background(), 1, 10, nil)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOccupyingByRoom_ExcludesBooking(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND room_id = \$2 AND status IN \(\$3,\$4,\$5,\$6\) AND id <> \$7 ORDER BY check_in ASC`).
		WithArgs(int64(1), int64(10), "pending", "confirmed", "checked_in", "checked_out", int64(3)).
		WillReturnRows(bookingRows())

	bookings, err := repo.ListOccupyingByRoom(context.Background(), 1, 10, ptr.Ptr(int64(3)))
	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForRange(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND status <> \$2 AND check_in < \$3 AND check_out > \$4 ORDER BY room_id ASC, check_in ASC`).
		WithArgs(int64(1), "cancelled", to, from).
		WillReturnRows(bookingRows(3))

	bookings, err := repo.ListForRange(context.Background(), 1, from, to)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE hotel_id = \$2 AND id = \$3`).
		WithArgs("confirmed", int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, 3, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs("confirmed", int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 1, 99, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM bookings WHERE hotel_id = \$1 AND id = \$2`).
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO bookings \(hotel_id,room_id,guest_id,check_in,check_out,total_price,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	b, err := repo.Create(context.Background(), &domain.Booking{
		HotelID:    1,
		RoomID:     10,
		GuestID:    5,
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: decimal.RequireFromString("2000"),
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, now, b.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

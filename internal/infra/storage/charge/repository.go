package charge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/psqlbuilder"
)

// chargeColumns полный набор колонок таблицы charges
var chargeColumns = []string{
	"id",
	"hotel_id",
	"booking_id",
	"room_id",
	"category",
	"description",
	"quantity",
	"unit_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий начислений (consumption entries)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория начислений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает начисление на бронирование
func (r *Repository) Create(ctx context.Context, c *domain.Charge) (*domain.Charge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("charges").
		Columns(
			"hotel_id",
			"booking_id",
			"room_id",
			"category",
			"description",
			"quantity",
			"unit_price",
		).
		Values(
			c.HotelID,
			c.BookingID,
			c.RoomID,
			c.Category,
			c.Description,
			c.Quantity,
			c.UnitPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает начисление по ID в рамках отеля
func (r *Repository) GetByID(ctx context.Context, hotelID, id int64) (*domain.Charge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chargeColumns...).
		From("charges").
		Where(squirrel.Eq{"id": id, "hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCharge(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrChargeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan charge: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByBooking получает все начисления бронирования
func (r *Repository) ListByBooking(ctx context.Context, hotelID, bookingID int64) ([]*domain.Charge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chargeColumns...).
		From("charges").
		Where(squirrel.Eq{"hotel_id": hotelID, "booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	charges := make([]*domain.Charge, 0)
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		charges = append(charges, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return charges, nil
}

// Update обновляет изменяемые поля начисления
func (r *Repository) Update(ctx context.Context, c *domain.Charge) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("charges").
		Set("category", c.Category).
		Set("description", c.Description).
		Set("quantity", c.Quantity).
		Set("unit_price", c.UnitPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID, "hotel_id": c.HotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "Update")
}

// Delete удаляет начисление
func (r *Repository) Delete(ctx context.Context, hotelID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("charges").
		Where(squirrel.Eq{"id": id, "hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "Delete")
}

// execExpectingRow выполняет запрос и требует ровно одну затронутую строку
func execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrChargeNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCharge сканирует одну строку в начисление
func scanCharge(row rowScanner) (*domain.Charge, error) {
	var c domain.Charge
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.HotelID,
		&c.BookingID,
		&c.RoomID,
		&c.Category,
		&c.Description,
		&c.Quantity,
		&c.UnitPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

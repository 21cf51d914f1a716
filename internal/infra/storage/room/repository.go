package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/psqlbuilder"
)

// roomColumns колонки rooms с присоединенным типом комнаты
var roomColumns = []string{
	"r.id",
	"r.hotel_id",
	"r.number",
	"r.floor",
	"r.status",
	"r.created_at",
	"r.updated_at",
	"rt.id",
	"rt.hotel_id",
	"rt.name",
	"rt.base_price",
}

// Repository репозиторий комнат.
// CRUD комнат живет во внешнем модуле; здесь только чтение
// и смена операционного статуса, которой владеет стейт-машина бронирований.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату по ID в рамках отеля.
// В транзакции блокирует строку комнаты (FOR UPDATE OF r):
// параллельные бронирования одной комнаты сериализуются на этой блокировке.
func (r *Repository) GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		LeftJoin("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.id": roomID, "r.hotel_id": hotelID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает все комнаты отеля, отсортированные по номеру
func (r *Repository) List(ctx context.Context, hotelID int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		LeftJoin("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.hotel_id": hotelID}).
		OrderBy("r.floor ASC, r.number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// UpdateStatus меняет операционный статус комнаты.
// Вызывается стейт-машиной при заселении/выселении.
func (r *Repository) UpdateStatus(ctx context.Context, hotelID, roomID int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomID, "hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRoom сканирует комнату вместе с опциональным типом
func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room      domain.Room
		createdAt sql.NullTime
		updatedAt sql.NullTime

		rtID        sql.NullInt64
		rtHotelID   sql.NullInt64
		rtName      sql.NullString
		rtBasePrice decimal.NullDecimal
	)

	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Number,
		&room.Floor,
		&room.Status,
		&createdAt,
		&updatedAt,
		&rtID,
		&rtHotelID,
		&rtName,
		&rtBasePrice,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	if rtID.Valid {
		room.RoomType = &domain.RoomType{
			ID:        rtID.Int64,
			HotelID:   rtHotelID.Int64,
			Name:      rtName.String,
			BasePrice: rtBasePrice.Decimal,
		}
	}

	return &room, nil
}

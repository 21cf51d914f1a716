package dailyclose

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/psqlbuilder"
	"github.com/m0rzh/HMS-BookingService/pkg/types"
)

// uniqueViolation код PostgreSQL для нарушения уникального констрейнта
const uniqueViolation = "23505"

// dailyCloseColumns полный набор колонок таблицы daily_closes
var dailyCloseColumns = []string{
	"id",
	"hotel_id",
	"date_key",
	"total_completed",
	"count_completed",
	"by_method",
	"notes",
	"created_by",
	"created_at",
}

// Repository репозиторий дневных закрытий.
// Таблица append-only: операций update/delete не существует —
// закрытие является неизменяемой точкой финансовой фиксации.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дневных закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое дневное закрытие.
// Дубль по (hotel_id, date_key) возвращает ErrDailyCloseExists.
func (r *Repository) Create(ctx context.Context, dc *domain.DailyClose) (*domain.DailyClose, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byMethodJSON, err := json.Marshal(dc.ByMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal by_method: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("daily_closes").
		Columns(
			"hotel_id",
			"date_key",
			"total_completed",
			"count_completed",
			"by_method",
			"notes",
			"created_by",
		).
		Values(
			dc.HotelID,
			dc.DateKey.String(),
			dc.TotalCompleted,
			dc.CountCompleted,
			byMethodJSON,
			dc.Notes,
			dc.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dc.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDailyCloseExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	dc.CreatedAt = createdAt.Time

	return dc, nil
}

// GetByDateKey получает закрытие отеля на конкретную дату
func (r *Repository) GetByDateKey(ctx context.Context, hotelID int64, dateKey types.DateKey) (*domain.DailyClose, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dailyCloseColumns...).
		From("daily_closes").
		Where(squirrel.Eq{"hotel_id": hotelID, "date_key": dateKey.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateKey - build select query: %v", ErrBuildQuery, err)
	}

	dc, err := scanDailyClose(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDailyCloseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateKey - scan daily close: %v", ErrScanRow, err)
	}

	return dc, nil
}

// List получает историю закрытий отеля, сначала новые
func (r *Repository) List(ctx context.Context, hotelID int64) ([]*domain.DailyClose, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dailyCloseColumns...).
		From("daily_closes").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("date_key DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closes := make([]*domain.DailyClose, 0)
	for rows.Next() {
		dc, err := scanDailyClose(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		closes = append(closes, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return closes, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDailyClose сканирует одну строку в закрытие
func scanDailyClose(row rowScanner) (*domain.DailyClose, error) {
	var (
		dc           domain.DailyClose
		dateKey      string
		byMethodJSON []byte
		createdAt    sql.NullTime
	)

	err := row.Scan(
		&dc.ID,
		&dc.HotelID,
		&dateKey,
		&dc.TotalCompleted,
		&dc.CountCompleted,
		&byMethodJSON,
		&dc.Notes,
		&dc.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	dc.DateKey = types.DateKey(dateKey)
	dc.CreatedAt = createdAt.Time

	dc.ByMethod = make(map[domain.PaymentMethod]decimal.Decimal)
	if len(byMethodJSON) > 0 {
		if err := json.Unmarshal(byMethodJSON, &dc.ByMethod); err != nil {
			return nil, fmt.Errorf("unmarshal by_method: %v", err)
		}
	}

	return &dc, nil
}

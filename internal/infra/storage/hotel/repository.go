package hotel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий отелей (тенантов).
// Онбординг тенантов живет во внешнем модуле; здесь только чтение —
// сервису нужны код отеля и таймзона для границ календарных суток.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает отель по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		h         domain.Hotel
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.Code,
		&h.Name,
		&h.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}

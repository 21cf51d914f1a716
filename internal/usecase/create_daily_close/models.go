package create_daily_close

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// Request модель запроса на закрытие дня
type Request struct {
	HotelID   int64
	DateKey   string // календарный день в формате YYYY-MM-DD, локальный для отеля
	Notes     *string
	CreatedBy int64
}

// Response модель ответа со снимком закрытия дня
type Response struct {
	ID             int64
	HotelID        int64
	DateKey        string
	TotalCompleted decimal.Decimal
	CountCompleted int
	ByMethod       map[string]decimal.Decimal
	Notes          *string
	CreatedBy      int64
	CreatedAt      time.Time
}

// fromDomain конвертирует доменный снимок в ответ usecase
func fromDomain(dc *domain.DailyClose) *Response {
	byMethod := make(map[string]decimal.Decimal, len(dc.ByMethod))
	for m, v := range dc.ByMethod {
		byMethod[string(m)] = v
	}

	return &Response{
		ID:             dc.ID,
		HotelID:        dc.HotelID,
		DateKey:        string(dc.DateKey),
		TotalCompleted: dc.TotalCompleted,
		CountCompleted: dc.CountCompleted,
		ByMethod:       byMethod,
		Notes:          dc.Notes,
		CreatedBy:      dc.CreatedBy,
		CreatedAt:      dc.CreatedAt,
	}
}

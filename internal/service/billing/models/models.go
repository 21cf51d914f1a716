package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// DueResponse финансовое состояние бронирования
type DueResponse struct {
	BookingID     int64           `json:"bookingId"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ChargesTotal  decimal.Decimal `json:"chargesTotal"`
	PaidCompleted decimal.Decimal `json:"paidCompleted"`
	Due           decimal.Decimal `json:"due"`
	Settled       bool            `json:"settled"`
}

// ClosePreviewResponse предварительный расчет закрытия дня.
// Те же цифры, что и в снимке, но без записи — превью можно
// запрашивать сколько угодно раз.
type ClosePreviewResponse struct {
	HotelID        int64                      `json:"hotelId"`
	DateKey        string                     `json:"dateKey"`
	TotalCompleted decimal.Decimal            `json:"totalCompleted"`
	CountCompleted int                        `json:"countCompleted"`
	ByMethod       map[string]decimal.Decimal `json:"byMethod"`
	AlreadyClosed  bool                       `json:"alreadyClosed"`
}

// DailyCloseResponse снимок закрытия дня в ответе сервиса
type DailyCloseResponse struct {
	ID             int64                      `json:"id"`
	HotelID        int64                      `json:"hotelId"`
	DateKey        string                     `json:"dateKey"`
	TotalCompleted decimal.Decimal            `json:"totalCompleted"`
	CountCompleted int                        `json:"countCompleted"`
	ByMethod       map[string]decimal.Decimal `json:"byMethod"`
	Notes          *string                    `json:"notes,omitempty"`
	CreatedBy      int64                      `json:"createdBy"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// FromDomainDue конвертирует доменную выписку в ответ сервиса
func FromDomainDue(d domain.DueStatement) *DueResponse {
	return &DueResponse{
		BookingID:     d.BookingID,
		TotalPrice:    d.TotalPrice,
		ChargesTotal:  d.ChargesTotal,
		PaidCompleted: d.PaidCompleted,
		Due:           d.Due,
		Settled:       d.IsSettled(),
	}
}

// FromDomainDailyClose конвертирует доменный снимок в ответ сервиса
func FromDomainDailyClose(dc *domain.DailyClose) *DailyCloseResponse {
	return &DailyCloseResponse{
		ID:             dc.ID,
		HotelID:        dc.HotelID,
		DateKey:        string(dc.DateKey),
		TotalCompleted: dc.TotalCompleted,
		CountCompleted: dc.CountCompleted,
		ByMethod:       methodMap(dc.ByMethod),
		Notes:          dc.Notes,
		CreatedBy:      dc.CreatedBy,
		CreatedAt:      dc.CreatedAt,
	}
}

// FromDomainDailyCloseList конвертирует список доменных снимков
func FromDomainDailyCloseList(closes []*domain.DailyClose) []*DailyCloseResponse {
	out := make([]*DailyCloseResponse, 0, len(closes))
	for _, dc := range closes {
		out = append(out, FromDomainDailyClose(dc))
	}
	return out
}

func methodMap(m map[domain.PaymentMethod]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// CreateChargeRequest запрос на начисление
type CreateChargeRequest struct {
	HotelID     int64
	BookingID   int64
	Category    string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// UpdateChargeRequest запрос на изменение начисления
type UpdateChargeRequest struct {
	HotelID     int64
	ChargeID    int64
	Category    string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// ChargeResponse начисление в ответе сервиса
type ChargeResponse struct {
	ID          int64           `json:"id"`
	HotelID     int64           `json:"hotelId"`
	BookingID   int64           `json:"bookingId"`
	RoomID      int64           `json:"roomId"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// FromDomainCharge конвертирует доменное начисление в ответ сервиса
func FromDomainCharge(c *domain.Charge) *ChargeResponse {
	return &ChargeResponse{
		ID:          c.ID,
		HotelID:     c.HotelID,
		BookingID:   c.BookingID,
		RoomID:      c.RoomID,
		Category:    string(c.Category),
		Description: c.Description,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		Total:       c.Total(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainChargeList конвертирует список доменных начислений
func FromDomainChargeList(charges []*domain.Charge) []*ChargeResponse {
	out := make([]*ChargeResponse, 0, len(charges))
	for _, c := range charges {
		out = append(out, FromDomainCharge(c))
	}
	return out
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// PaymentResponse платеж в ответе сервиса
type PaymentResponse struct {
	ID        int64           `json:"id"`
	HotelID   int64           `json:"hotelId"`
	BookingID int64           `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	PaidAt    time.Time       `json:"paidAt"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromDomainPayment конвертирует доменный платеж в ответ сервиса
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		HotelID:   p.HotelID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainPaymentList конвертирует список доменных платежей
func FromDomainPaymentList(payments []*domain.Payment) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDomainPayment(p))
	}
	return out
}

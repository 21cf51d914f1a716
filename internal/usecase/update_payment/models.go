package update_payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// Request модель запроса на изменение платежа
type Request struct {
	HotelID   int64
	PaymentID int64
	Amount    decimal.Decimal
	Method    string
	Status    string
	PaidAt    time.Time // нулевое время сохраняет прежнюю дату
}

// Response модель ответа с измененным платежом
type Response struct {
	ID        int64
	HotelID   int64
	BookingID int64
	Amount    decimal.Decimal
	Method    string
	Status    string
	PaidAt    time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменный платеж в ответ usecase
func fromDomain(p *domain.Payment) *Response {
	return &Response{
		ID:        p.ID,
		HotelID:   p.HotelID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		UpdatedAt: p.UpdatedAt,
	}
}

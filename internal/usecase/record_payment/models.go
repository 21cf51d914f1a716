package record_payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// Request модель запроса на проведение платежа
type Request struct {
	HotelID   int64
	BookingID int64
	Amount    decimal.Decimal
	Method    string
	Status    string    // пустой статус трактуется как completed
	PaidAt    time.Time // нулевое время трактуется как текущий момент
}

// Response модель ответа с проведенным платежом и остатком к оплате
type Response struct {
	ID        int64
	HotelID   int64
	BookingID int64
	Amount    decimal.Decimal
	Method    string
	Status    string
	PaidAt    time.Time
	Due       decimal.Decimal // остаток после проведения платежа
	CreatedAt time.Time
}

// fromDomain конвертирует доменный платеж в ответ usecase
func fromDomain(p *domain.Payment, due decimal.Decimal) *Response {
	return &Response{
		ID:        p.ID,
		HotelID:   p.HotelID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		Due:       due,
		CreatedAt: p.CreatedAt,
	}
}

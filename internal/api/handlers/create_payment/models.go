package create_payment

import (
	"time"

	"github.com/shopspring/decimal"

	recordPayment "github.com/m0rzh/HMS-BookingService/internal/usecase/record_payment"
)

// CreatePaymentRequest HTTP request model
type CreatePaymentRequest struct {
	BookingID int64           `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status,omitempty"` // по умолчанию completed
	PaidAt    *time.Time      `json:"paidAt,omitempty"` // по умолчанию сейчас
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID        int64           `json:"id"`
	BookingID int64           `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	PaidAt    string          `json:"paidAt"`
	Due       decimal.Decimal `json:"due"`
	CreatedAt string          `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePaymentRequest) ToUseCaseRequest(hotelID int64) *recordPayment.Request {
	req := &recordPayment.Request{
		HotelID:   hotelID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Method:    r.Method,
		Status:    r.Status,
	}
	if r.PaidAt != nil {
		req.PaidAt = *r.PaidAt
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		ID:        resp.ID,
		BookingID: resp.BookingID,
		Amount:    resp.Amount,
		Method:    resp.Method,
		Status:    resp.Status,
		PaidAt:    resp.PaidAt.Format(time.RFC3339),
		Due:       resp.Due,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

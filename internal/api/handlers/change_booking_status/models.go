package change_booking_status

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	changeStatus "github.com/m0rzh/HMS-BookingService/internal/usecase/change_booking_status"
)

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64           `json:"id"`
	RoomID     int64           `json:"roomId"`
	GuestID    int64           `json:"guestId"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	UpdatedAt  string          `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeStatus.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		RoomID:     resp.RoomID,
		GuestID:    resp.GuestID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

package move_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	moveBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/move_booking"
)

// MoveBookingRequest HTTP request model
type MoveBookingRequest struct {
	NewRoomID int64 `json:"newRoomId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64           `json:"id"`
	RoomID     int64           `json:"roomId"`
	GuestID    int64           `json:"guestId"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	UpdatedAt  string          `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		RoomID:     resp.RoomID,
		GuestID:    resp.GuestID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

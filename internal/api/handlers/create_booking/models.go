package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	createBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	GuestID  int64  `json:"guestId"`
	CheckIn  string `json:"checkIn"`  // "2026-03-10"
	CheckOut string `json:"checkOut"` // "2026-03-12"
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
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(hotelID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		HotelID:  hotelID,
		RoomID:   r.RoomID,
		GuestID:  r.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		RoomID:     resp.RoomID,
		GuestID:    resp.GuestID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

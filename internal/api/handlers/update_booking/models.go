package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
	updateBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(hotelID, bookingID int64) (*updateBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		HotelID:   hotelID,
		BookingID: bookingID,
		RoomID:    r.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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

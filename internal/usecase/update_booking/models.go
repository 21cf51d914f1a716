package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// Request модель запроса на изменение дат/комнаты бронирования
type Request struct {
	HotelID   int64
	BookingID int64
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64
	HotelID    int64
	RoomID     int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// fromDomain конвертирует доменное бронирование в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:         b.ID,
		HotelID:    b.HotelID,
		RoomID:     b.RoomID,
		GuestID:    b.GuestID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     b.Nights(),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

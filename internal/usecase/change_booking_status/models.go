package change_booking_status

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	HotelID   int64
	BookingID int64
	NewStatus string // парсится в закрытый enum, неизвестные значения отклоняются
}

// Response модель ответа с бронированием после перехода
type Response struct {
	ID         int64
	HotelID    int64
	RoomID     int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice decimal.Decimal
	Status     string
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
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		UpdatedAt:  b.UpdatedAt,
	}
}

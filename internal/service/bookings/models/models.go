package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotelId"`
	RoomID     int64           `json:"roomId"`
	GuestID    int64           `json:"guestId"`
	CheckIn    time.Time       `json:"checkIn"`
	CheckOut   time.Time       `json:"checkOut"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// RoomResponse комната в ответе сервиса
type RoomResponse struct {
	ID        int64           `json:"id"`
	HotelID   int64           `json:"hotelId"`
	Number    string          `json:"number"`
	Floor     int             `json:"floor"`
	TypeName  *string         `json:"typeName,omitempty"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Status    string          `json:"status"`
}

// PlanningRequest запрос шахматки: комнаты и их занятость за период
type PlanningRequest struct {
	HotelID int64
	From    time.Time
	To      time.Time
}

// PlanningResponse шахматка за период
type PlanningResponse struct {
	From     time.Time          `json:"from"`
	To       time.Time          `json:"to"`
	Rooms    []*RoomResponse    `json:"rooms"`
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return out
}

// FromDomainRoom конвертирует доменную комнату в ответ сервиса
func FromDomainRoom(r *domain.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Number:    r.Number,
		Floor:     r.Floor,
		BasePrice: r.NightlyPrice(),
		Status:    string(r.Status),
	}
	if r.RoomType != nil {
		resp.TypeName = &r.RoomType.Name
	}
	return resp
}

// FromDomainRoomList конвертирует список доменных комнат
func FromDomainRoomList(rooms []*domain.Room) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromDomainRoom(r))
	}
	return out
}

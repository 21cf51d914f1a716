package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	createBooking "github.com/m0rzh/HMS-BookingService/internal/usecase/create_booking"
	"github.com/m0rzh/HMS-BookingService/pkg/auth"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeParser struct{}

func (fakeParser) Parse(string) (*auth.Claims, error) {
	return &auth.Claims{HotelID: 1, UserID: 77}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type envelope struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details"`
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings", handler.Handle).Methods(http.MethodPost)
	router.Use(middleware.Auth(fakeParser{}, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Now().UTC()
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         42,
		HotelID:    1,
		RoomID:     10,
		GuestID:    5,
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Nights:     2,
		TotalPrice: decimal.RequireFromString("2000"),
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}}

	rec := doRequest(t, uc, `{"roomId":10,"guestId":5,"checkIn":"2026-03-10","checkOut":"2026-03-12"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// hotel scope comes from the token, dates are parsed from the body
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.HotelID)
	assert.Equal(t, int64(10), uc.gotReq.RoomID)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), uc.gotReq.CheckIn)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, 2, body.Nights)
}

func TestHandle_ConflictCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"room not available", createBooking.ErrRoomNotAvailable, "ROOM_NOT_AVAILABLE"},
		{"room in maintenance", createBooking.ErrRoomInMaintenance, "ROOM_IN_MAINTENANCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err},
				`{"roomId":10,"guestId":5,"checkIn":"2026-03-10","checkOut":"2026-03-12"}`)
			require.Equal(t, http.StatusConflict, rec.Code)

			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandle_InvalidDates(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrInvalidDateRange},
		`{"roomId":10,"guestId":5,"checkIn":"2026-03-12","checkOut":"2026-03-10"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_DATES", body.Code)
}

func TestHandle_UnparsableDate(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"roomId":10,"guestId":5,"checkIn":"10.03.2026","checkOut":"2026-03-12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_GuestNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrGuestNotFound},
		`{"roomId":10,"guestId":999,"checkIn":"2026-03-10","checkOut":"2026-03-12"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

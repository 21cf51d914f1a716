package change_booking_status

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
	changeStatus "github.com/m0rzh/HMS-BookingService/internal/usecase/change_booking_status"
	"github.com/m0rzh/HMS-BookingService/pkg/auth"
)

type fakeUseCase struct {
	resp *changeStatus.Response
	err  error

	gotReq *changeStatus.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *changeStatus.Request) (*changeStatus.Response, error) {
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
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", handler.Handle).Methods(http.MethodPatch)
	router.Use(middleware.Auth(fakeParser{}, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/3/status", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &changeStatus.Response{
		ID:         3,
		HotelID:    1,
		RoomID:     10,
		GuestID:    5,
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: decimal.RequireFromString("2000"),
		Status:     "confirmed",
		UpdatedAt:  time.Now().UTC(),
	}}

	rec := doRequest(t, uc, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// hotel scope comes from the token, booking id from the path
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.HotelID)
	assert.Equal(t, int64(3), uc.gotReq.BookingID)
	assert.Equal(t, "confirmed", uc.gotReq.NewStatus)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "2026-03-10", body.CheckIn)
}

func TestHandle_CheckoutBlockedWithDueDetails(t *testing.T) {
	uc := &fakeUseCase{err: &changeStatus.DueError{Due: decimal.RequireFromString("500")}}

	rec := doRequest(t, uc, `{"status":"checked_out"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "BOOKING_HAS_DUE", body.Code)
	assert.NotEmpty(t, body.Error)

	require.Contains(t, body.Details, "due")
	assert.InDelta(t, 500.0, body.Details["due"], 0.001)
}

func TestHandle_InvalidTransition(t *testing.T) {
	uc := &fakeUseCase{err: changeStatus.ErrInvalidTransition}

	rec := doRequest(t, uc, `{"status":"checked_in"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
	assert.Nil(t, body.Details)
}

func TestHandle_BookingNotFound(t *testing.T) {
	uc := &fakeUseCase{err: changeStatus.ErrBookingNotFound}

	rec := doRequest(t, uc, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"status":"confirmed","force":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

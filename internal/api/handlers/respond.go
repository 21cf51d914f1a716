package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Коды ошибок API. Клиенты матчатся по коду, текст только для людей.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInvalidDates         = "INVALID_DATES"
	CodeNotFound             = "NOT_FOUND"
	CodeRoomNotAvailable     = "ROOM_NOT_AVAILABLE"
	CodeRoomInMaintenance    = "ROOM_IN_MAINTENANCE"
	CodeSameRoom             = "SAME_ROOM"
	CodeBookingLocked        = "BOOKING_LOCKED"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeBookingHasDue        = "BOOKING_HAS_DUE"
	CodeAmountExceedsBalance = "AMOUNT_EXCEEDS_BALANCE"
	CodeDailyCloseExists     = "DAILY_CLOSE_EXISTS"
	CodeInternalError        = "INTERNAL_ERROR"
)

// ErrEmptyBody возвращается при пустом теле запроса
var ErrEmptyBody = errors.New("handlers: empty request body")

// errorResponse единый конверт ошибки API
type errorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// RespondJSON пишет успешный ответ с телом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondNoContent пишет успешный ответ без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError пишет ошибку в едином конверте
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondErrorDetails(w, status, code, message, nil)
}

// RespondErrorDetails пишет ошибку с дополнительными деталями
func RespondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// RespondBadRequest пишет 400 с кодом INVALID_INPUT
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidInput, message)
}

// RespondNotFound пишет 404 с кодом NOT_FOUND
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondInternalError пишет 500 с кодом INTERNAL_ERROR
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, "internal server error")
}

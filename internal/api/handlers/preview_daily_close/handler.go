package preview_daily_close

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/billing"
)

const (
	msgInvalidDateKey = "некорректная дата, ожидается YYYY-MM-DD"
	msgHotelNotFound  = "отель не найден"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/daily-close/preview?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		handlers.RespondBadRequest(w, msgInvalidDateKey)
		return
	}

	result, err := h.service.PreviewClose(r.Context(), hotelID, dateKey)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDateKey)

		case errors.Is(err, billing.ErrHotelNotFound):
			h.logger.Warn("GET /daily-close/preview - Hotel not found: hotel=%d, date=%s", hotelID, dateKey)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /daily-close/preview - Failed to preview: hotel=%d, date=%s, error=%v",
				hotelID, dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

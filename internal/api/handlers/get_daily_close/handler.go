package get_daily_close

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/billing"
)

const (
	msgInvalidDateKey    = "некорректная дата, ожидается YYYY-MM-DD"
	msgDailyCloseMissing = "закрытие дня не найдено"
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

// Handle GET /api/v1/daily-close/{dateKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	dateKey := mux.Vars(r)["dateKey"]

	result, err := h.service.GetClose(r.Context(), hotelID, dateKey)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDateKey)

		case errors.Is(err, billing.ErrDailyCloseNotFound):
			h.logger.Warn("GET /daily-close/%s - Close not found: hotel=%d", dateKey, hotelID)
			handlers.RespondNotFound(w, msgDailyCloseMissing)

		default:
			h.logger.Error("GET /daily-close/%s - Failed to fetch close: hotel=%d, error=%v", dateKey, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

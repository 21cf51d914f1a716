package list_daily_closes

import (
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/billing/models"
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

// closeListResponse обертка со списком закрытий
type closeListResponse struct {
	DailyCloses []*models.DailyCloseResponse `json:"dailyCloses"`
}

// Handle GET /api/v1/daily-close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	result, err := h.service.ListCloses(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /daily-close - Failed to list closes: hotel=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, closeListResponse{DailyCloses: result})
}

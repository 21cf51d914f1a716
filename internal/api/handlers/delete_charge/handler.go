package delete_charge

import (
	"errors"
	"net/http"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges"
)

const (
	msgInvalidChargeID = "некорректный ID начисления"
	msgChargeNotFound  = "начисление не найдено"
)

type Handler struct {
	service ChargeService
	logger  Logger
}

func NewHandler(service ChargeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/charges/{chargeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	chargeID, err := handlers.PathInt64(r, "chargeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidChargeID)
		return
	}

	if err := h.service.Delete(r.Context(), hotelID, chargeID); err != nil {
		switch {
		case errors.Is(err, charges.ErrChargeNotFound):
			h.logger.Warn("DELETE /charges/%d - Charge not found: hotel=%d", chargeID, hotelID)
			handlers.RespondNotFound(w, msgChargeNotFound)

		default:
			h.logger.Error("DELETE /charges/%d - Failed to delete charge: hotel=%d, error=%v", chargeID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /charges/%d - Charge deleted: hotel=%d", chargeID, hotelID)
	handlers.RespondNoContent(w)
}

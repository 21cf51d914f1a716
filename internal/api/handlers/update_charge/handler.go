package update_charge

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges"
	"github.com/m0rzh/HMS-BookingService/internal/service/charges/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidChargeID    = "некорректный ID начисления"
	msgChargeNotFound     = "начисление не найдено"
)

// UpdateChargeRequest HTTP request model
type UpdateChargeRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

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

// Handle PUT /api/v1/charges/{chargeId}
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

	var req UpdateChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /charges/%d - Invalid request body: %v", chargeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateChargeRequest{
		HotelID:     hotelID,
		ChargeID:    chargeID,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, charges.ErrInvalidInput):
			h.logger.Warn("PUT /charges/%d - Invalid input: %v", chargeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, charges.ErrChargeNotFound):
			h.logger.Warn("PUT /charges/%d - Charge not found: hotel=%d", chargeID, hotelID)
			handlers.RespondNotFound(w, msgChargeNotFound)

		default:
			h.logger.Error("PUT /charges/%d - Failed to update charge: hotel=%d, error=%v", chargeID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /charges/%d - Charge updated: hotel=%d", chargeID, hotelID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

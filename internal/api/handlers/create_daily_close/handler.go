package create_daily_close

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	createClose "github.com/m0rzh/HMS-BookingService/internal/usecase/create_daily_close"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHotelNotFound      = "отель не найден"
	msgDailyCloseExists   = "день уже закрыт"
)

// CreateDailyCloseRequest HTTP request model
type CreateDailyCloseRequest struct {
	DateKey string  `json:"dateKey"` // "2026-03-12"
	Notes   *string `json:"notes,omitempty"`
}

// DailyCloseResponse HTTP response model
type DailyCloseResponse struct {
	ID             int64                      `json:"id"`
	DateKey        string                     `json:"dateKey"`
	TotalCompleted decimal.Decimal            `json:"totalCompleted"`
	CountCompleted int                        `json:"countCompleted"`
	ByMethod       map[string]decimal.Decimal `json:"byMethod"`
	Notes          *string                    `json:"notes,omitempty"`
	CreatedBy      int64                      `json:"createdBy"`
	CreatedAt      string                     `json:"createdAt"`
}

type Handler struct {
	useCase CreateDailyCloseUseCase
	logger  Logger
}

func NewHandler(useCase CreateDailyCloseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/daily-close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := middleware.HotelIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateDailyCloseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /daily-close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createClose.Request{
		HotelID:   hotelID,
		DateKey:   req.DateKey,
		Notes:     req.Notes,
		CreatedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createClose.ErrInvalidInput):
			h.logger.Warn("POST /daily-close - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createClose.ErrHotelNotFound):
			h.logger.Warn("POST /daily-close - Hotel not found: hotel=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createClose.ErrDailyCloseExists):
			h.logger.Warn("POST /daily-close - Already closed: hotel=%d, date=%s", hotelID, req.DateKey)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeDailyCloseExists, msgDailyCloseExists)

		default:
			h.logger.Error("POST /daily-close - Failed to close day: hotel=%d, date=%s, error=%v",
				hotelID, req.DateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /daily-close - Day closed: hotel=%d, date=%s, total=%s",
		hotelID, result.DateKey, result.TotalCompleted.String())
	handlers.RespondJSON(w, http.StatusCreated, &DailyCloseResponse{
		ID:             result.ID,
		DateKey:        result.DateKey,
		TotalCompleted: result.TotalCompleted,
		CountCompleted: result.CountCompleted,
		ByMethod:       result.ByMethod,
		Notes:          result.Notes,
		CreatedBy:      result.CreatedBy,
		CreatedAt:      result.CreatedAt.Format(time.RFC3339),
	})
}

package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/rafaelruch/agendapro-sub002/internal/api/handlers"
	"github.com/rafaelruch/agendapro-sub002/internal/api/middleware"
	"github.com/rafaelruch/agendapro-sub002/internal/service/schedule"
	"github.com/rafaelruch/agendapro-sub002/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDayOfWeek   = "dia da semana inválido, esperado 0 (domingo) a 6 (sábado)"
	msgInvalidTimeRange   = "horário inicial deve ser anterior ao final, formato HH:MM"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	DayOfWeek int                 `json:"dayOfWeek"`
	Entries   []models.HoursEntry `json:"entries"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceDay(r.Context(), &models.ReplaceDayRequest{
		TenantID:  tenantID,
		DayOfWeek: req.DayOfWeek,
		Entries:   req.Entries,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /business-hours - Invalid dayOfWeek=%d: tenant_id=%d", req.DayOfWeek, tenantID)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /business-hours - Invalid time range: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("PUT /business-hours - Failed: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours - Replaced day=%d: tenant_id=%d", result.DayOfWeek, tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

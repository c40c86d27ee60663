package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/api/handlers"
	"github.com/rafaelruch/agendapro-sub002/internal/api/middleware"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/service/appointments"
	"github.com/rafaelruch/agendapro-sub002/internal/service/appointments/models"
)

const (
	msgInvalidDate           = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidProfessionalID = "ID de profissional inválido"
	msgInvalidStatus         = "status inválido"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (YYYY-MM-DD), professionalId, status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	req := &models.ListAppointmentsRequest{TenantID: tenantID}
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date=%q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if profStr := query.Get("professionalId"); profStr != "" {
		professionalID, err := strconv.ParseInt(profStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid professionalId=%q: %v", profStr, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &professionalID
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /appointments - Invalid status=%q: tenant_id=%d", *req.Status, tenantID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments: tenant_id=%d", result.Total, tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

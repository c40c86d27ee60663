package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rafaelruch/agendapro-sub002/internal/api/handlers"
	"github.com/rafaelruch/agendapro-sub002/internal/api/middleware"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	updateAppointment "github.com/rafaelruch/agendapro-sub002/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "ID de agendamento inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgNotFound             = "agendamento não encontrado"
	msgNotEditable          = "agendamento não pode ser alterado no status atual"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotOffered    = "o profissional não realiza este serviço"
	msgInvalidData          = "dados da requisição inválidos"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *updateAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /appointments/{id} - Slot conflict: appointment_id=%d, conflicting_id=%d",
				appointmentID, conflictErr.Conflicting.ID)
			handlers.RespondAppointmentConflict(w, &handlers.ConflictingAppointment{
				ID:         conflictErr.Conflicting.ID,
				ClientName: conflictErr.Conflicting.ClientName,
				Date:       conflictErr.Conflicting.Date.Format(domain.DateFormat),
				Time:       conflictErr.Conflicting.StartTime.String(),
			})

		case errors.Is(err, updateAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id} - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondOutsideBusinessHours(w)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Not found: appointment_id=%d, tenant_id=%d", appointmentID, tenantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PUT /appointments/{id} - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrProfessionalNotFound):
			h.logger.Warn("PUT /appointments/{id} - Professional not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotOffered):
			h.logger.Warn("PUT /appointments/{id} - Service not offered: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%d, tenant_id=%d", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

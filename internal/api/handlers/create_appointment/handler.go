package create_appointment

import (
	"errors"
	"net/http"

	"github.com/rafaelruch/agendapro-sub002/internal/api/handlers"
	"github.com/rafaelruch/agendapro-sub002/internal/api/middleware"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	createAppointment "github.com/rafaelruch/agendapro-sub002/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgClientNotFound       = "cliente não encontrado"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotOffered    = "o profissional não realiza este serviço"
	msgInvalidData          = "dados da requisição inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /appointments - Slot conflict: tenant_id=%d, conflicting_id=%d",
				tenantID, conflictErr.Conflicting.ID)
			handlers.RespondAppointmentConflict(w, &handlers.ConflictingAppointment{
				ID:         conflictErr.Conflicting.ID,
				ClientName: conflictErr.Conflicting.ClientName,
				Date:       conflictErr.Conflicting.Date.Format(domain.DateFormat),
				Time:       conflictErr.Conflicting.StartTime.String(),
			})

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: tenant_id=%d", tenantID)
			handlers.RespondOutsideBusinessHours(w)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: tenant_id=%d, client_id=%d", tenantID, req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotOffered):
			h.logger.Warn("POST /appointments - Service not offered by professional: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, tenant_id=%d", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package models

import (
	"errors"
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

var (
	// ErrInvalidStatus is returned when the status string is unknown.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// CancelAppointmentRequest is the input of the cancel action.
type CancelAppointmentRequest struct {
	TenantID           int64
	AppointmentID      int64
	CancellationReason string
}

// UpdateStatusRequest is the input of a confirm/complete transition.
type UpdateStatusRequest struct {
	TenantID      int64
	AppointmentID int64
	Status        string
}

// ListAppointmentsRequest selects a tenant's appointments.
type ListAppointmentsRequest struct {
	TenantID         int64
	Date             *time.Time
	ProfessionalID   *int64
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter converts the request into the repository filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.TenantAppointmentsFilter, error) {
	filter := domain.TenantAppointmentsFilter{
		TenantID:         r.TenantID,
		Date:             r.Date,
		ProfessionalID:   r.ProfessionalID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, ok := domain.ParseStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// AppointmentResponse is the appointment as exposed over the API.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenantId"`
	ClientID        int64   `json:"clientId"`
	ClientName      string  `json:"clientName"`
	ProfessionalID  *int64  `json:"professionalId,omitempty"`
	Date            string  `json:"date"` // "2025-03-10"
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceIDs      []int64 `json:"serviceIds"`

	ServiceNames []string `json:"serviceNames"`
	TotalPrice   float64  `json:"totalPrice"`
	Notes        *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment converts a domain appointment into the response model.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              appt.ID,
		TenantID:        appt.TenantID,
		ClientID:        appt.ClientID,
		ClientName:      appt.ClientName,
		ProfessionalID:  appt.ProfessionalID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceIDs:      appt.ServiceIDs,
		ServiceNames:    appt.ServiceNames,
		TotalPrice:      appt.TotalPrice,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}

	resp.CancellationReason = appt.CancellationReason
	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList converts a slice of domain appointments.
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		list = append(list, *FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: list,
		Total:        len(list),
	}
}

package check_availability

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	checkAvailability "github.com/rafaelruch/agendapro-sub002/internal/usecase/check_availability"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	AppointmentID   *int64  `json:"appointmentId,omitempty"`
	ProfessionalID  *int64  `json:"professionalId,omitempty"`
	Date            string  `json:"date"`      // "2025-03-10"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	ServiceIDs      []int64 `json:"serviceIds,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available       bool                    `json:"available"`
	Reason          string                  `json:"reason,omitempty"`
	Conflicting     *ConflictingAppointment `json:"conflictingAppointment,omitempty"`
	DurationMinutes int                     `json:"durationMinutes"`
}

// ConflictingAppointment mirrors the 409 contract's summary.
type ConflictingAppointment struct {
	ID         int64  `json:"id"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *CheckAvailabilityRequest) ToUseCaseRequest(tenantID int64) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		TenantID:        tenantID,
		AppointmentID:   r.AppointmentID,
		ProfessionalID:  r.ProfessionalID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		ServiceIDs:      r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Available:       resp.Available,
		Reason:          resp.Reason,
		DurationMinutes: resp.DurationMinutes,
	}
	if resp.Conflicting != nil {
		out.Conflicting = &ConflictingAppointment{
			ID:         resp.Conflicting.ID,
			ClientName: resp.Conflicting.ClientName,
			Date:       resp.Conflicting.Date,
			Time:       resp.Conflicting.Time,
		}
	}
	return out
}

package create_appointment

import (
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// validateRequest checks the request shape before any data is fetched.
// Malformed input never reaches the availability engine.
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes exceeds %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateProfessionalServices checks that the professional performs every
// requested service.
func validateProfessionalServices(prof *domain.Professional, serviceIDs []int64) error {
	if len(prof.ServiceIDs) == 0 {
		// A professional without a declared service list performs anything.
		return nil
	}
	for _, id := range serviceIDs {
		if !prof.CanPerform(id) {
			return fmt.Errorf("%w: service id=%d", ErrServiceNotOffered, id)
		}
	}
	return nil
}

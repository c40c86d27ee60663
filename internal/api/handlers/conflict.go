package handlers

import "net/http"

// Machine-readable error codes of the 409 contract. External automations
// (N8N flows) branch on these strings, so they are part of the API surface
// and must not change.
const (
	ErrCodeAppointmentConflict  = "appointment_conflict"
	ErrCodeOutsideBusinessHours = "outside_business_hours"
)

// ConflictingAppointment is the summary of the appointment blocking a slot.
type ConflictingAppointment struct {
	ID         int64  `json:"id"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"` // "2025-03-10"
	Time       string `json:"time"` // "10:00"
}

// ConflictResponse is the 409 body for booking rejections.
type ConflictResponse struct {
	Error                  string                  `json:"error"`
	ConflictingAppointment *ConflictingAppointment `json:"conflictingAppointment,omitempty"`
}

// RespondAppointmentConflict writes the 409 body for an overlapping slot.
func RespondAppointmentConflict(w http.ResponseWriter, conflicting *ConflictingAppointment) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error:                  ErrCodeAppointmentConflict,
		ConflictingAppointment: conflicting,
	})
}

// RespondOutsideBusinessHours writes the 409 body for an off-hours slot.
func RespondOutsideBusinessHours(w http.ResponseWriter) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error: ErrCodeOutsideBusinessHours,
	})
}

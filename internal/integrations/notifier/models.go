package notifier

// Event names sent to the automation webhook.
const (
	EventAppointmentBooked    = "appointment_booked"
	EventAppointmentCancelled = "appointment_cancelled"
)

// AppointmentEvent is the payload external automations (N8N flows) receive.
// The summary mirrors exactly the conflict summary of the booking API so
// automations handle one shape.
type AppointmentEvent struct {
	Event       string             `json:"event"`
	TenantID    int64              `json:"tenantId"`
	Appointment AppointmentSummary `json:"appointment"`
}

// AppointmentSummary is the compact appointment representation on the wire.
type AppointmentSummary struct {
	ID         int64  `json:"id"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
}

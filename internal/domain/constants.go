package domain

// Default values applied when the catalog or the request carries no duration.
const (
	DefaultDurationMinutes = 60
)

// SlotStepMinutes is the grid slot generation walks on.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinDurationMinutes          = 5
	MaxDurationMinutes          = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Wire format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses enumerates every accepted appointment status.
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus maps a wire string onto a status, rejecting unknown values.
func ParseStatus(s string) (AppointmentStatus, bool) {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

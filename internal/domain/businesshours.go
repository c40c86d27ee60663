package domain

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// BusinessHours is one configured working interval of a tenant on a weekday.
// A weekday may carry several rows (split shifts around a lunch break); only
// active rows are considered by the availability gate.
type BusinessHours struct {
	ID        int64
	TenantID  int64
	DayOfWeek int // 0=Sunday .. 6=Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

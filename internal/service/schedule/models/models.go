package models

import "github.com/rafaelruch/agendapro-sub002/internal/domain"

// HoursEntry is one working interval of a weekday.
type HoursEntry struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
	Active    bool   `json:"active"`
}

// ReplaceDayRequest replaces every interval of one weekday.
type ReplaceDayRequest struct {
	TenantID  int64
	DayOfWeek int
	Entries   []HoursEntry
}

// DayResponse is one weekday with its intervals.
type DayResponse struct {
	DayOfWeek int          `json:"dayOfWeek"`
	Entries   []HoursEntry `json:"entries"`
}

// WeekResponse is the tenant's full weekly schedule, days in 0..6 order.
type WeekResponse struct {
	Days []DayResponse `json:"days"`
}

// FromDomainWeek groups business-hours rows by weekday.
func FromDomainWeek(rows []*domain.BusinessHours) *WeekResponse {
	byDay := make(map[int][]HoursEntry)
	for _, row := range rows {
		byDay[row.DayOfWeek] = append(byDay[row.DayOfWeek], HoursEntry{
			StartTime: row.StartTime.String(),
			EndTime:   row.EndTime.String(),
			Active:    row.Active,
		})
	}

	week := &WeekResponse{Days: make([]DayResponse, 0, len(byDay))}
	for day := 0; day <= 6; day++ {
		entries, ok := byDay[day]
		if !ok {
			continue
		}
		week.Days = append(week.Days, DayResponse{DayOfWeek: day, Entries: entries})
	}
	return week
}

package get_business_hours

import (
	"context"

	"github.com/rafaelruch/agendapro-sub002/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, tenantID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

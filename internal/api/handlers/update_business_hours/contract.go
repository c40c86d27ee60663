package update_business_hours

import (
	"context"

	"github.com/rafaelruch/agendapro-sub002/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

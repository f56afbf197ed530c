package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWeeklyRules(ctx context.Context) (*models.WeeklyRuleListResponse, error)
	ListDateExceptions(ctx context.Context, date time.Time) (*models.DateExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package upsert_date_exception

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertDateException(ctx context.Context, req *models.UpsertDateExceptionRequest) (*models.DateExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

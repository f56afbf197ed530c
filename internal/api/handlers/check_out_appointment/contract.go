package check_out_appointment

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

type AppointmentService interface {
	CheckOut(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_supplier_appointments

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetBySupplier(ctx context.Context, supplierID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package check_in_appointment

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/internal/integrations/erpservice"
	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

type AppointmentService interface {
	CheckIn(ctx context.Context, id int64) (*models.CheckInResponse, error)
}

// ERPNotifier отправляет запись о прибытии в ERP склада
type ERPNotifier interface {
	NotifyCheckInWithGracefulDegradation(ctx context.Context, payload *domain.ERPPayload) (*erpservice.NotifyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package check_in_appointment

import (
	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

// CheckInResponse HTTP response model: агендирование, запись для ERP
// и результат её доставки
type CheckInResponse struct {
	Appointment models.AppointmentResponse `json:"appointment"`
	ERPPayload  *domain.ERPPayload         `json:"erpPayload"`
	ERPDelivery string                     `json:"erpDelivery"` // delivered | degraded | disabled
}

const (
	erpDelivered = "delivered"
	erpDegraded  = "degraded"
	erpDisabled  = "disabled"
)

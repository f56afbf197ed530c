package update_appointment

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	updateAppointment "github.com/m04kA/WPS-DockService/internal/usecase/update_appointment"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model. Отсутствующие поля не изменяются.
type UpdateAppointmentRequest struct {
	Date          *string `json:"date,omitempty"` // "2025-06-05"
	Time          *string `json:"time,omitempty"` // "10:00"
	PurchaseOrder *string `json:"purchaseOrder,omitempty"`
	TruckPlate    *string `json:"truckPlate,omitempty"`
	DriverName    *string `json:"driverName,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	SupplierID    int64  `json:"supplierId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	PurchaseOrder string `json:"purchaseOrder"`
	TruckPlate    string `json:"truckPlate"`
	DriverName    string `json:"driverName"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:            id,
		PurchaseOrder: r.PurchaseOrder,
		TruckPlate:    r.TruckPlate,
		DriverName:    r.DriverName,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		slot, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &slot
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		SupplierID:    resp.SupplierID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		Status:        resp.Status,
		PurchaseOrder: resp.PurchaseOrder,
		TruckPlate:    resp.TruckPlate,
		DriverName:    resp.DriverName,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

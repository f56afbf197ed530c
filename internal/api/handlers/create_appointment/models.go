package create_appointment

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	createAppointment "github.com/m04kA/WPS-DockService/internal/usecase/create_appointment"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SupplierID    int64  `json:"supplierId"`
	Date          string `json:"date"` // "2025-06-05"
	Time          string `json:"time"` // "10:00"
	PurchaseOrder string `json:"purchaseOrder"`
	TruckPlate    string `json:"truckPlate"`
	DriverName    string `json:"driverName"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	SupplierID    int64  `json:"supplierId"`
	SupplierName  string `json:"supplierName"`
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
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SupplierID:    r.SupplierID,
		Date:          date,
		Time:          slot,
		PurchaseOrder: r.PurchaseOrder,
		TruckPlate:    r.TruckPlate,
		DriverName:    r.DriverName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		SupplierID:    resp.SupplierID,
		SupplierName:  resp.SupplierName,
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

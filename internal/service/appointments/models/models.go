package models

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// Request модели

// GetWeekRequest запрос на получение агендирований недели
type GetWeekRequest struct {
	WeekStart  time.Time `json:"weekStart"`
	SupplierID *int64    `json:"supplierId,omitempty"` // Фильтр по поставщику (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetWeekRequest) ToDomainFilter() domain.WeekFilter {
	return domain.WeekFilter{
		WeekStart:  r.WeekStart,
		SupplierID: r.SupplierID,
	}
}

// Response модели

// AppointmentResponse ответ с данными агендирования
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	SupplierID    int64  `json:"supplierId"`
	Date          string `json:"date"` // "2025-06-05"
	Time          string `json:"time"` // "10:00"
	Status        string `json:"status"`
	PurchaseOrder string `json:"purchaseOrder"`
	TruckPlate    string `json:"truckPlate"`
	DriverName    string `json:"driverName"`

	CheckInTime  *string `json:"checkInTime,omitempty"`  // ISO 8601 format
	CheckOutTime *string `json:"checkOutTime,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком агендирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CheckInResponse ответ на check-in: агендирование и запись для ERP
type CheckInResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	ERPPayload  *domain.ERPPayload  `json:"erpPayload"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:            a.ID,
		SupplierID:    a.SupplierID,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		PurchaseOrder: a.PurchaseOrder,
		TruckPlate:    a.TruckPlate,
		DriverName:    a.DriverName,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.CheckInTime != nil {
		s := a.CheckInTime.UTC().Format(time.RFC3339)
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.UTC().Format(time.RFC3339)
		resp.CheckOutTime = &s
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

package domain

import "time"

// ERPPayload is the structured record handed to the warehouse ERP system when
// a truck checks in. The engine only builds it; delivery is the caller's
// responsibility and may be retried independently.
type ERPPayload struct {
	AppointmentID int64   `json:"appointment_id"`
	SupplierTaxID string  `json:"supplier_tax_id"`
	SupplierName  string  `json:"supplier_name"`
	PurchaseOrder string  `json:"purchase_order"`
	TruckPlate    string  `json:"truck_plate"`
	DriverName    string  `json:"driver_name"`
	ScheduledDate string  `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime string  `json:"scheduled_time"` // HH:MM
	CheckInTime   *string `json:"check_in_time"`  // RFC 3339
	CheckOutTime  *string `json:"check_out_time"` // RFC 3339
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"` // payload build time, RFC 3339
}

// BuildERPPayload assembles the ERP record for an appointment and its supplier
func BuildERPPayload(appointment *Appointment, supplier *Supplier, now time.Time) *ERPPayload {
	payload := &ERPPayload{
		AppointmentID: appointment.ID,
		SupplierTaxID: supplier.TaxID,
		SupplierName:  supplier.Name,
		PurchaseOrder: appointment.PurchaseOrder,
		TruckPlate:    appointment.TruckPlate,
		DriverName:    appointment.DriverName,
		ScheduledDate: appointment.Date.Format(DateFormat),
		ScheduledTime: appointment.Time.String(),
		Status:        string(appointment.Status),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}

	if appointment.CheckInTime != nil {
		s := appointment.CheckInTime.UTC().Format(time.RFC3339)
		payload.CheckInTime = &s
	}
	if appointment.CheckOutTime != nil {
		s := appointment.CheckOutTime.UTC().Format(time.RFC3339)
		payload.CheckOutTime = &s
	}

	return payload
}

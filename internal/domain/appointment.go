package domain

import (
	"time"

	"github.com/m04kA/WPS-DockService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of a dock appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusCheckedIn  AppointmentStatus = "checked_in"
	StatusCheckedOut AppointmentStatus = "checked_out"
)

// Appointment represents a truck-dock appointment: one supplier holding one
// (date, time) cell of the dock calendar
type Appointment struct {
	ID         int64
	SupplierID int64
	Date       time.Time
	Time       types.TimeString
	Status     AppointmentStatus

	PurchaseOrder string
	TruckPlate    string
	DriverName    string

	CheckInTime  *time.Time
	CheckOutTime *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies dock capacity
// (the truck has not left yet)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusCheckedIn
}

// CanCheckIn returns true if the appointment may transition to checked_in
func (a *Appointment) CanCheckIn() bool {
	return a.Status == StatusScheduled
}

// CanCheckOut returns true if the appointment may transition to checked_out
func (a *Appointment) CanCheckOut() bool {
	return a.Status == StatusCheckedIn
}

// CanBeDeleted returns true if the appointment may be removed.
// A checked-in truck is physically at the dock and must be checked out first;
// scheduled and checked_out appointments can be deleted.
func (a *Appointment) CanBeDeleted() bool {
	return a.Status != StatusCheckedIn
}

// IsTerminal returns true if the appointment reached its final state
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCheckedOut
}

// WeekFilter selects appointments for one calendar week, optionally scoped
// to a single supplier
type WeekFilter struct {
	WeekStart  time.Time // first day of the week, inclusive
	SupplierID *int64    // nil = all suppliers
}

// WeekEnd returns the last day of the week (inclusive)
func (f WeekFilter) WeekEnd() time.Time {
	return f.WeekStart.AddDate(0, 0, 6)
}

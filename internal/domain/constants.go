package domain

import "github.com/m04kA/WPS-DockService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookableHours is the fixed catalog of dock slots: hourly from 08:00 to 17:00
// inclusive, 10 slots per day. This is a business constant of the warehouse,
// not a per-request parameter.
var BookableHours = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// IsBookableHour reports whether t belongs to the fixed slot catalog
func IsBookableHour(t types.TimeString) bool {
	for _, hour := range BookableHours {
		if hour == t {
			return true
		}
	}
	return false
}

// Field length constants
const (
	MaxPurchaseOrderLength = 100
	MaxTruckPlateLength    = 20
	MaxDriverNameLength    = 100
	MaxReasonLength        = 200
	MaxSupplierNameLength  = 200
	MaxTaxIDLength         = 18
)

// ActiveStatuses are the statuses that make an appointment count as active.
// A supplier with appointments in these statuses cannot be soft-deleted.
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCheckedIn,
}

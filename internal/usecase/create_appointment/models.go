package create_appointment

import (
	"time"

	"github.com/m04kA/WPS-DockService/pkg/types"
)

// Request запрос на создание агендирования
type Request struct {
	SupplierID    int64
	Date          time.Time
	Time          types.TimeString
	PurchaseOrder string
	TruckPlate    string
	DriverName    string
}

// Response ответ с данными созданного агендирования
type Response struct {
	ID            int64
	SupplierID    int64
	SupplierName  string
	Date          time.Time
	Time          types.TimeString
	Status        string
	PurchaseOrder string
	TruckPlate    string
	DriverName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

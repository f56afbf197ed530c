package update_appointment

import (
	"time"

	"github.com/m04kA/WPS-DockService/pkg/types"
)

// Request запрос на изменение агендирования. Nil-поля остаются без изменений.
// EnforceScheduledOnly включает политику "только до check-in": сам движок
// правок статус не ограничивает, ограничение задает вызывающий слой.
type Request struct {
	ID                   int64
	Date                 *time.Time
	Time                 *types.TimeString
	PurchaseOrder        *string
	TruckPlate           *string
	DriverName           *string
	EnforceScheduledOnly bool
}

// Response ответ с данными обновленного агендирования
type Response struct {
	ID            int64
	SupplierID    int64
	Date          time.Time
	Time          types.TimeString
	Status        string
	PurchaseOrder string
	TruckPlate    string
	DriverName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

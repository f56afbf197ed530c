package upsert_date_exception

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// UpsertDateExceptionRequest HTTP request model
type UpsertDateExceptionRequest struct {
	Date        string `json:"date"` // "2025-06-05"
	Time        string `json:"time"` // "12:00"
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertDateExceptionRequest) ToServiceRequest() (*models.UpsertDateExceptionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.UpsertDateExceptionRequest{
		Date:        date,
		Time:        slot,
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
	}, nil
}

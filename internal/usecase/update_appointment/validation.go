package update_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.Date == nil && req.Time == nil && req.PurchaseOrder == nil &&
		req.TruckPlate == nil && req.DriverName == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
		if !domain.IsBookableHour(*req.Time) {
			return fmt.Errorf("%w: time %s is outside dock hours", ErrInvalidTimeSlot, *req.Time)
		}
	}

	if req.PurchaseOrder != nil {
		if strings.TrimSpace(*req.PurchaseOrder) == "" {
			return fmt.Errorf("%w: purchaseOrder must not be empty", ErrInvalidInput)
		}
		if len(*req.PurchaseOrder) > domain.MaxPurchaseOrderLength {
			return fmt.Errorf("%w: purchaseOrder exceeds %d characters", ErrInvalidInput, domain.MaxPurchaseOrderLength)
		}
	}

	if req.TruckPlate != nil {
		if strings.TrimSpace(*req.TruckPlate) == "" {
			return fmt.Errorf("%w: truckPlate must not be empty", ErrInvalidInput)
		}
		if len(*req.TruckPlate) > domain.MaxTruckPlateLength {
			return fmt.Errorf("%w: truckPlate exceeds %d characters", ErrInvalidInput, domain.MaxTruckPlateLength)
		}
	}

	if req.DriverName != nil {
		if strings.TrimSpace(*req.DriverName) == "" {
			return fmt.Errorf("%w: driverName must not be empty", ErrInvalidInput)
		}
		if len(*req.DriverName) > domain.MaxDriverNameLength {
			return fmt.Errorf("%w: driverName exceeds %d characters", ErrInvalidInput, domain.MaxDriverNameLength)
		}
	}

	return nil
}

// validateDate проверяет, что календарная дата не в прошлом.
// Дата запроса парсится в UTC, а часы сервера могут идти в другой зоне,
// поэтому сравниваются календарные дни каждого значения в общей зоне.
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// slotVerdict итоговый вердикт по одному слоту
type slotVerdict struct {
	available bool
	occupied  bool
	reason    string
}

// resolveSlotVerdict применяет правила календаря к одному часу:
// исключение на дату > правило дня недели > правило-вайлдкард > доступен по умолчанию.
// Агендирование с id == excludeID не считается занимающим слот, чтобы
// перенос в рамках того же слота не конфликтовал сам с собой.
func resolveSlotVerdict(
	date time.Time,
	hour types.TimeString,
	weeklyRules []*domain.WeeklyRule,
	exceptions []*domain.DateException,
	appointments []*domain.Appointment,
	excludeID int64,
) slotVerdict {
	verdict := slotVerdict{available: true}

	var wildcard *domain.WeeklyRule
	var daySpecific *domain.WeeklyRule
	for _, rule := range weeklyRules {
		if rule.Time != hour || !rule.MatchesDate(date) {
			continue
		}
		if rule.IsWildcard() {
			wildcard = rule
		} else {
			daySpecific = rule
		}
	}

	if rule := daySpecific; rule != nil {
		verdict.available = rule.IsAvailable
		verdict.reason = rule.Reason
	} else if rule := wildcard; rule != nil {
		verdict.available = rule.IsAvailable
		verdict.reason = rule.Reason
	}

	for _, exc := range exceptions {
		if exc.Time == hour {
			verdict.available = exc.IsAvailable
			verdict.reason = exc.Reason
		}
	}

	for _, a := range appointments {
		if a.ID != excludeID && a.Time == hour {
			verdict.occupied = true
			break
		}
	}

	return verdict
}

package get_day_slots

import (
	"github.com/m04kA/WPS-DockService/internal/domain"
	getDaySlots "github.com/m04kA/WPS-DockService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель одного слота с вердиктом доступности.
// available — вердикт правил календаря, occupied — занятость агендированием;
// bookable объединяет оба: слот открыт и свободен.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Occupied  bool   `json:"occupied"`
	Bookable  bool   `json:"bookable"`
	Reason    string `json:"reason,omitempty"`
	Source    string `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Time:      s.Time.String(),
			Available: s.IsAvailable,
			Occupied:  s.IsOccupied,
			Bookable:  s.Bookable(),
			Reason:    s.Reason,
			Source:    string(s.Source),
		}
	}

	return &DaySlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

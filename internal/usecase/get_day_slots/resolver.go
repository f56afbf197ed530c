package get_day_slots

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// resolveSlots сводит три источника в итоговый вердикт по каждому часу каталога.
// Чистая функция без побочных эффектов; приоритет слоёв:
//
//	исключение на дату > правило дня недели > правило-вайлдкард > доступен по умолчанию
//
// Занятость агендированием учитывается отдельно: занятый слот недоступен для
// НОВЫХ бронирований, но вердикт правил и причина блокировки сохраняются,
// чтобы администратор отличал "закрыт правилом" от "занят агендированием".
func resolveSlots(
	date time.Time,
	weeklyRules []*domain.WeeklyRule,
	exceptions []*domain.DateException,
	appointments []*domain.Appointment,
) []domain.ResolvedSlot {
	daySpecific := make(map[types.TimeString]*domain.WeeklyRule)
	wildcard := make(map[types.TimeString]*domain.WeeklyRule)
	for _, rule := range weeklyRules {
		if !rule.MatchesDate(date) {
			continue
		}
		if rule.IsWildcard() {
			wildcard[rule.Time] = rule
		} else {
			daySpecific[rule.Time] = rule
		}
	}

	exceptionByTime := make(map[types.TimeString]*domain.DateException)
	for _, exc := range exceptions {
		exceptionByTime[exc.Time] = exc
	}

	occupied := make(map[types.TimeString]bool)
	for _, a := range appointments {
		occupied[a.Time] = true
	}

	slots := make([]domain.ResolvedSlot, 0, len(domain.BookableHours))
	for _, hour := range domain.BookableHours {
		slot := domain.ResolvedSlot{
			Time:        hour,
			IsAvailable: true,
			Source:      domain.SourceBaseline,
		}

		if rule, ok := daySpecific[hour]; ok {
			applyWeekly(&slot, rule)
		} else if rule, ok := wildcard[hour]; ok {
			applyWeekly(&slot, rule)
		}

		if exc, ok := exceptionByTime[hour]; ok {
			slot.IsAvailable = exc.IsAvailable
			slot.Source = domain.SourceException
			slot.Reason = ""
			if !exc.IsAvailable {
				slot.Reason = exc.Reason
			}
		}

		slot.IsOccupied = occupied[hour]

		slots = append(slots, slot)
	}

	return slots
}

func applyWeekly(slot *domain.ResolvedSlot, rule *domain.WeeklyRule) {
	slot.IsAvailable = rule.IsAvailable
	slot.Source = domain.SourceWeekly
	slot.Reason = ""
	if !rule.IsAvailable {
		slot.Reason = rule.Reason
	}
}

package get_day_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/types"
	"github.com/m04kA/WPS-DockService/pkg/ptr"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestResolveSlots_EmptyCalendar(t *testing.T) {
	date := mustDate(t, "2025-06-02") // понедельник

	slots := resolveSlots(date, nil, nil, nil)

	require.Len(t, slots, len(domain.BookableHours))
	for i, slot := range slots {
		assert.Equal(t, domain.BookableHours[i], slot.Time)
		assert.True(t, slot.IsAvailable)
		assert.False(t, slot.IsOccupied)
		assert.Equal(t, domain.SourceBaseline, slot.Source)
		assert.Empty(t, slot.Reason)
	}
}

func TestResolveSlots_SortedAscending(t *testing.T) {
	date := mustDate(t, "2025-06-02")

	slots := resolveSlots(date, nil, nil, nil)

	require.Len(t, slots, 10)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Time.IsBefore(slots[i].Time))
	}
}

func TestResolveSlots_WildcardRuleBlocksEveryDay(t *testing.T) {
	rules := []*domain.WeeklyRule{
		{DayOfWeek: nil, Time: "12:00", IsAvailable: false, Reason: "Almoço"},
	}

	for _, day := range []string{"2025-06-02", "2025-06-04", "2025-06-08"} {
		slots := resolveSlots(mustDate(t, day), rules, nil, nil)
		slot := findSlot(t, slots, "12:00")
		assert.False(t, slot.IsAvailable, "day %s", day)
		assert.Equal(t, "Almoço", slot.Reason)
		assert.Equal(t, domain.SourceWeekly, slot.Source)
	}
}

func TestResolveSlots_DaySpecificBeatsWildcard(t *testing.T) {
	// Вайлдкард закрывает 12:00 всем дням, правило четверга открывает его обратно.
	thursday := mustDate(t, "2025-06-05")
	friday := mustDate(t, "2025-06-06")
	rules := []*domain.WeeklyRule{
		{DayOfWeek: nil, Time: "12:00", IsAvailable: false, Reason: "Almoço"},
		{DayOfWeek: ptr.Ptr(int(time.Thursday)), Time: "12:00", IsAvailable: true},
	}

	thuSlot := findSlot(t, resolveSlots(thursday, rules, nil, nil), "12:00")
	assert.True(t, thuSlot.IsAvailable)
	assert.Empty(t, thuSlot.Reason)

	friSlot := findSlot(t, resolveSlots(friday, rules, nil, nil), "12:00")
	assert.False(t, friSlot.IsAvailable)
	assert.Equal(t, "Almoço", friSlot.Reason)
}

func TestResolveSlots_RuleForOtherWeekdayIgnored(t *testing.T) {
	monday := mustDate(t, "2025-06-02")
	rules := []*domain.WeeklyRule{
		{DayOfWeek: ptr.Ptr(int(time.Friday)), Time: "09:00", IsAvailable: false, Reason: "Manutenção"},
	}

	slot := findSlot(t, resolveSlots(monday, rules, nil, nil), "09:00")
	assert.True(t, slot.IsAvailable)
	assert.Equal(t, domain.SourceBaseline, slot.Source)
}

func TestResolveSlots_ExceptionOverridesWeeklyRule(t *testing.T) {
	date := mustDate(t, "2025-06-02")
	rules := []*domain.WeeklyRule{
		{DayOfWeek: ptr.Ptr(int(time.Monday)), Time: "10:00", IsAvailable: false, Reason: "Inventário"},
	}
	exceptions := []*domain.DateException{
		{Date: date, Time: "10:00", IsAvailable: true},
	}

	slot := findSlot(t, resolveSlots(date, rules, exceptions, nil), "10:00")
	assert.True(t, slot.IsAvailable)
	assert.Empty(t, slot.Reason)
	assert.Equal(t, domain.SourceException, slot.Source)
}

func TestResolveSlots_BlockingExceptionCarriesReason(t *testing.T) {
	date := mustDate(t, "2025-06-02")
	exceptions := []*domain.DateException{
		{Date: date, Time: "15:00", IsAvailable: false, Reason: "Feriado municipal"},
	}

	slot := findSlot(t, resolveSlots(date, nil, exceptions, nil), "15:00")
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, "Feriado municipal", slot.Reason)
	assert.Equal(t, domain.SourceException, slot.Source)
}

func TestResolveSlots_OccupiedIndependentOfRules(t *testing.T) {
	date := mustDate(t, "2025-06-02")
	rules := []*domain.WeeklyRule{
		{DayOfWeek: nil, Time: "12:00", IsAvailable: false, Reason: "Almoço"},
	}
	appointments := []*domain.Appointment{
		{ID: 1, Time: "08:00", Status: domain.StatusScheduled},
		{ID: 2, Time: "12:00", Status: domain.StatusCheckedIn},
	}

	slots := resolveSlots(date, rules, nil, appointments)

	open := findSlot(t, slots, "08:00")
	assert.True(t, open.IsAvailable)
	assert.True(t, open.IsOccupied)
	assert.False(t, open.Bookable())

	blocked := findSlot(t, slots, "12:00")
	assert.False(t, blocked.IsAvailable)
	assert.True(t, blocked.IsOccupied)
	assert.Equal(t, "Almoço", blocked.Reason)
}

func findSlot(t *testing.T, slots []domain.ResolvedSlot, hour types.TimeString) domain.ResolvedSlot {
	t.Helper()
	for _, s := range slots {
		if s.Time == hour {
			return s
		}
	}
	t.Fatalf("slot %s not found", hour)
	return domain.ResolvedSlot{}
}

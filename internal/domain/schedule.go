package domain

import (
	"time"

	"github.com/m04kA/WPS-DockService/pkg/types"
)

// WeeklyRule is a recurring availability statement for one bookable hour.
// DayOfWeek follows 0=Sunday .. 6=Saturday; nil means the rule applies to
// every day of the week. For a given (DayOfWeek, Time) pair at most one rule
// exists: saving again replaces the previous one.
type WeeklyRule struct {
	ID          int64
	DayOfWeek   *int // nil = all days
	Time        types.TimeString
	IsAvailable bool
	Reason      string // required when IsAvailable=false
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWildcard returns true if the rule applies to every day of the week
func (r *WeeklyRule) IsWildcard() bool {
	return r.DayOfWeek == nil
}

// MatchesDate returns true if the rule applies to the given date
func (r *WeeklyRule) MatchesDate(date time.Time) bool {
	if r.DayOfWeek == nil {
		return true
	}
	return *r.DayOfWeek == int(date.Weekday())
}

// DateException is a one-off availability statement for a concrete date and
// hour. It overrides any weekly rule for that cell, regardless of rule age.
// At most one exception exists per (Date, Time): saving again replaces it.
type DateException struct {
	ID          int64
	Date        time.Time
	Time        types.TimeString
	IsAvailable bool
	Reason      string // required when IsAvailable=false
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResolvedSlot is the final verdict for one (date, hour) cell after merging
// weekly rules, date exceptions and existing appointments. It is computed on
// demand and never persisted.
type ResolvedSlot struct {
	Time        types.TimeString
	IsAvailable bool   // rule-level verdict: false if a rule or exception blocks the hour
	Reason      string // why the hour is blocked, empty when available
	IsOccupied  bool   // an appointment already holds this cell
	Source      SlotVerdictSource
}

// SlotVerdictSource identifies which layer produced the availability verdict
type SlotVerdictSource string

const (
	SourceBaseline  SlotVerdictSource = "baseline"  // no rule: available by default
	SourceWeekly    SlotVerdictSource = "weekly"    // day-specific or wildcard weekly rule
	SourceException SlotVerdictSource = "exception" // date exception
)

// Bookable reports whether a new appointment may target this slot:
// the hour must be rule-available and not occupied.
func (s *ResolvedSlot) Bookable() bool {
	return s.IsAvailable && !s.IsOccupied
}

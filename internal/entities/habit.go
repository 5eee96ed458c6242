// Package entities implements the habit-tracking entities
package entities

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeHabit is the entity type reported on the event bus
const EntityTypeHabit = "habit"

// Habit represents a trackable recurring task with a per-day completion log.
// NOTE: This is a data-only struct. All derived numbers (XP, level, streak,
// progress) are computed by the progression orchestrator, not here.
type Habit struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Category      Category        `json:"category"`
	XPReward      int             `json:"xpReward"`
	GoalValue     int             `json:"goalValue"`
	AlarmTime     string          `json:"alarmTime"` // "HH:MM" wall clock, empty means no alarm
	HardcoreAlarm bool            `json:"hardcoreAlarm"`
	DailyLogs     map[string]bool `json:"dailyLogs"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     int64           `json:"createdAt"`
	UpdatedAt     int64           `json:"updatedAt"`
}

// GetID returns the habit's unique identifier
func (h *Habit) GetID() string {
	return h.ID
}

// GetType returns the entity type for event bus routing
func (h *Habit) GetType() string {
	return EntityTypeHabit
}

// Compile-time check that Habit implements core.Entity
var _ core.Entity = (*Habit)(nil)

// HasAlarm reports whether an alarm time is set
func (h *Habit) HasAlarm() bool {
	return h.AlarmTime != ""
}

// AlarmEligible reports whether this habit should hold a scheduled wake-up
func (h *Habit) AlarmEligible() bool {
	return h.IsActive && h.AlarmTime != ""
}

// IsLogged reports the completion state for a day key. A missing entry
// means "not completed", never "unknown".
func (h *Habit) IsLogged(dayKey string) bool {
	return h.DailyLogs[dayKey]
}

// DayKey formats a calendar day as the sparse log key.
// The format is year-month-day with a 1-based month and no zero padding,
// matching the persisted snapshots.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// DayKeyFor builds a log key for a specific day of the given month
func DayKeyFor(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, int(month), day)
}

package testutils

import (
	"time"

	"github.com/statmaxer/statmaxer/internal/entities"
)

// HabitFixture returns a habit with sensible defaults for tests.
// Mutate the returned struct to specialize.
func HabitFixture(id string) *entities.Habit {
	return &entities.Habit{
		ID:        id,
		Name:      "Gym",
		Icon:      "🏋️",
		Category:  entities.CategoryStrength,
		XPReward:  10,
		GoalValue: 30,
		DailyLogs: make(map[string]bool),
		IsActive:  true,
	}
}

// LogDays marks the given days (offsets back from today, 0 = today) as
// completed in the habit's daily log
func LogDays(h *entities.Habit, today time.Time, offsets ...int) {
	if h.DailyLogs == nil {
		h.DailyLogs = make(map[string]bool)
	}
	for _, off := range offsets {
		h.DailyLogs[entities.DayKey(today.AddDate(0, 0, -off))] = true
	}
}

package habit

import (
	"github.com/statmaxer/statmaxer/internal/entities"
)

// AddHabitInput defines the input for creating a habit
type AddHabitInput struct {
	Name          string
	Icon          string
	Category      entities.Category
	XPReward      int
	GoalValue     int
	AlarmTime     string // "HH:MM", empty for no alarm
	HardcoreAlarm bool
}

// AddHabitOutput defines the output for creating a habit
type AddHabitOutput struct {
	Habit *entities.Habit
}

// DeleteHabitInput defines the input for deleting a habit
type DeleteHabitInput struct {
	ID string
}

// DeleteHabitOutput defines the output for deleting a habit
type DeleteHabitOutput struct {
	// Found is false when no habit had the given ID; the delete was a no-op
	Found bool
}

// ToggleDayInput defines the input for flipping a day's completion state.
// Day is a day of the current display month.
type ToggleDayInput struct {
	HabitID string
	Day     int
}

// ToggleDayOutput defines the output for flipping a day's completion state
type ToggleDayOutput struct {
	// Found is false when the habit does not exist; Checked is then false
	Found bool
	// Checked is the new completion state for the day
	Checked bool
}

// IsDayCheckedInput defines the input for reading a day's completion state
type IsDayCheckedInput struct {
	HabitID string
	Day     int
}

// IsDayCheckedOutput defines the output for reading a day's completion state
type IsDayCheckedOutput struct {
	Checked bool
}

// IsTodayCheckedInput defines the input for reading today's completion state
type IsTodayCheckedInput struct {
	HabitID string
}

// IsTodayCheckedOutput defines the output for reading today's completion state
type IsTodayCheckedOutput struct {
	Checked bool
}

// ListHabitsInput defines the input for listing habits
type ListHabitsInput struct{}

// ListHabitsOutput defines the output for listing habits
type ListHabitsOutput struct {
	Habits []*entities.Habit
}

// GetHabitInput defines the input for reading a single habit
type GetHabitInput struct {
	ID string
}

// GetHabitOutput defines the output for reading a single habit.
// Habit is nil when not found; callers treating reads as total
// functions use the zero-value accessors on the output instead.
type GetHabitOutput struct {
	Habit *entities.Habit
}

// SetActiveInput defines the input for toggling a habit's active flag
type SetActiveInput struct {
	HabitID  string
	IsActive bool
}

// SetActiveOutput defines the output for toggling a habit's active flag
type SetActiveOutput struct {
	Found bool
}

// GetPlayerNameInput defines the input for reading the display name
type GetPlayerNameInput struct{}

// GetPlayerNameOutput defines the output for reading the display name
type GetPlayerNameOutput struct {
	Name string
}

// SetPlayerNameInput defines the input for storing the display name
type SetPlayerNameInput struct {
	Name string
}

// SetPlayerNameOutput defines the output for storing the display name
type SetPlayerNameOutput struct{}

// ResetAllInput defines the input for the full data reset
type ResetAllInput struct{}

// ResetAllOutput defines the output for the full data reset
type ResetAllOutput struct {
	HabitsDeleted int
}

// SeedDefaultsInput defines the input for first-run seeding
type SeedDefaultsInput struct{}

// SeedDefaultsOutput defines the output for first-run seeding
type SeedDefaultsOutput struct {
	// Seeded is false when the collection was non-empty and untouched
	Seeded bool
	Habits []*entities.Habit
}

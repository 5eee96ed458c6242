package progression

import (
	"github.com/statmaxer/statmaxer/internal/entities"
)

// GetHabitProgressInput defines the input for per-habit progress reads
type GetHabitProgressInput struct {
	HabitID string
}

// GetHabitProgressOutput defines the output for per-habit progress reads.
// A missing habit yields zero values, not an error.
type GetHabitProgressOutput struct {
	CompletedDays   int
	ProgressPercent float64
}

// GetTotalXPInput defines the input for the XP total read
type GetTotalXPInput struct{}

// GetTotalXPOutput defines the output for the XP total read
type GetTotalXPOutput struct {
	TotalXP int
}

// GetLevelInput defines the input for the level read
type GetLevelInput struct{}

// GetLevelOutput defines the output for the level read
type GetLevelOutput struct {
	Level int
	// XPForNextLevel is the total XP at which the current level ends
	XPForNextLevel int
	// ProgressPercent is how far through the current level's band the
	// player is, floored to a whole percentage
	ProgressPercent int
}

// GetStreakInput defines the input for the streak read
type GetStreakInput struct{}

// GetStreakOutput defines the output for the streak read
type GetStreakOutput struct {
	// Streak is the best current run across all habits, not a sum
	Streak int
	// Multiplier is display-only; it is never applied to TotalXP
	Multiplier float64
}

// GetCategoryStatsInput defines the input for the category breakdown
type GetCategoryStatsInput struct{}

// GetCategoryStatsOutput defines the output for the category breakdown
type GetCategoryStatsOutput struct {
	Stats map[entities.Category]int
}

// GetStatsInput defines the input for the aggregate dashboard read
type GetStatsInput struct{}

// GetStatsOutput defines the output for the aggregate dashboard read
type GetStatsOutput struct {
	TotalXP        int
	Level          int
	XPForNextLevel int
	LevelProgress  int
	Streak         int
	XPMultiplier   float64
	TotalCompleted int
	CategoryStats  map[entities.Category]int
	SnoozePenalty  int
	PlayerName     string
}

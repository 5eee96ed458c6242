package progression

import (
	"math"
	"time"

	"github.com/statmaxer/statmaxer/internal/entities"
)

const (
	// xpPerLevelCoef is the constant in the level curve: a level's XP
	// band ends at level² × 100 total XP
	xpPerLevelCoef = 100

	// StreakMultiplierThreshold is the streak length that activates the
	// display multiplier
	StreakMultiplierThreshold = 3

	// StreakMultiplier is shown once the threshold is reached. It is
	// informational only and is never folded into the XP total.
	StreakMultiplier = 1.5

	// BaseMultiplier is shown below the threshold
	BaseMultiplier = 1.0
)

// XPForLevel returns the total XP at which the given level's band ends,
// i.e. the XP required to reach level+1. Level L spans
// [(L-1)² × 100, L² × 100).
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return level * level * xpPerLevelCoef
}

// LevelForXP derives the player level: floor(sqrt(totalXP / 100)) + 1.
// Level 1 is the floor at zero XP.
func LevelForXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(totalXP)/float64(xpPerLevelCoef)))) + 1
}

// LevelProgressPercent returns how far through the current level's XP
// band the total is, floored to a whole percentage in [0, 100].
func LevelProgressPercent(totalXP int) int {
	level := LevelForXP(totalXP)
	bandStart := XPForLevel(level - 1)
	bandEnd := XPForLevel(level)
	if bandEnd <= bandStart {
		return 0
	}

	pct := (totalXP - bandStart) * 100 / (bandEnd - bandStart)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CompletedDays counts the true entries in a habit's daily log
func CompletedDays(h *entities.Habit) int {
	if h == nil {
		return 0
	}

	count := 0
	for _, done := range h.DailyLogs {
		if done {
			count++
		}
	}
	return count
}

// ProgressPercent returns completion toward the habit's goal, clamped to
// [0, 100]. A zero goal yields 0 rather than dividing.
func ProgressPercent(h *entities.Habit) float64 {
	if h == nil || h.GoalValue <= 0 {
		return 0
	}

	pct := float64(CompletedDays(h)) * 100 / float64(h.GoalValue)
	if pct > 100 {
		return 100
	}
	return pct
}

// StreakFrom walks backward day by day from today counting consecutive
// completed days. The walk stops at the first false or missing entry, so
// a miss immediately before today yields zero regardless of older history.
func StreakFrom(h *entities.Habit, today time.Time) int {
	if h == nil {
		return 0
	}

	streak := 0
	day := today
	for h.IsLogged(entities.DayKey(day)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MultiplierForStreak returns the display multiplier for a streak length
func MultiplierForStreak(streak int) float64 {
	if streak >= StreakMultiplierThreshold {
		return StreakMultiplier
	}
	return BaseMultiplier
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/orchestrators/progression"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the player's progression stats",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}

	stats, err := a.progression.GetStats(ctx, &progression.GetStatsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Player:     %s\n", stats.PlayerName)
	fmt.Printf("Level:      %d (%d%% to level %d)\n", stats.Level, stats.LevelProgress, stats.Level+1)
	fmt.Printf("Total XP:   %d (next level at %d)\n", stats.TotalXP, stats.XPForNextLevel)
	fmt.Printf("Streak:     %d days (multiplier %.1fx)\n", stats.Streak, stats.XPMultiplier)
	fmt.Printf("Completed:  %d habit-days\n", stats.TotalCompleted)
	fmt.Printf("Penalty:    -%d XP from snoozing\n", stats.SnoozePenalty)
	fmt.Println("Categories:")
	for _, category := range entities.Categories() {
		fmt.Printf("  %-13s %d XP\n", category, stats.CategoryStats[category])
	}

	habits, err := a.store.ListHabits(ctx, nil)
	if err != nil {
		return err
	}
	if len(habits.Habits) == 0 {
		fmt.Println("No habits yet. Run 'statmaxer seed' to create the starter set.")
		return nil
	}

	fmt.Println("Quest log:")
	for _, h := range habits.Habits {
		p, err := a.progression.GetHabitProgress(ctx, &progression.GetHabitProgressInput{HabitID: h.ID})
		if err != nil {
			return err
		}
		alarm := "-"
		if h.HasAlarm() {
			alarm = h.AlarmTime
			if h.HardcoreAlarm {
				alarm += " (hardcore)"
			}
		}
		fmt.Printf("  %s %-16s %3d/%d days (%.1f%%)  alarm: %s\n",
			h.Icon, h.Name, p.CompletedDays, h.GoalValue, p.ProgressPercent, alarm)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	habitorch "github.com/statmaxer/statmaxer/internal/orchestrators/habit"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty collection with the starter habits",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}

	out, err := a.store.SeedDefaults(ctx, &habitorch.SeedDefaultsInput{})
	if err != nil {
		return err
	}
	if !out.Seeded {
		fmt.Printf("Collection already has %d habits, nothing seeded.\n", len(out.Habits))
		return nil
	}
	fmt.Printf("Seeded %d starter habits:\n", len(out.Habits))
	for _, h := range out.Habits {
		fmt.Printf("  %s %s (%s, %d XP)\n", h.Icon, h.Name, h.Category, h.XPReward)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	habitorch "github.com/statmaxer/statmaxer/internal/orchestrators/habit"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all habits and player state",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if !resetYes {
		fmt.Print("This deletes every habit, the player name, and the penalty ledger. Type 'yes' to continue: ")
		var answer string
		if _, err := fmt.Scanln(&answer); err != nil || answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	out, err := a.store.ResetAll(ctx, &habitorch.ResetAllInput{})
	if err != nil {
		return err
	}
	fmt.Printf("Reset complete, %d habits deleted.\n", out.HabitsDeleted)
	return nil
}

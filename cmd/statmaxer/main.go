// Package main is the entry point for the statmaxer engine CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statmaxer",
	Short: "StatMaxer habit progression engine",
	Long:  `StatMaxer tracks daily habits as an RPG: completed days earn XP, levels follow a square-root curve, and habits with alarm times get daily quest notifications.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var daemonSeed bool

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the alarm daemon",
	Long:  `Run the alarm daemon: arms one wake-up per active habit with an alarm time, fires quest notifications, and re-arms daily until interrupted.`,
	RunE:  runDaemon,
}

func init() {
	daemonCmd.Flags().BoolVar(&daemonSeed, "seed", true, "seed the default habits when the collection is empty")
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}

	if daemonSeed {
		seeded, err := a.store.SeedDefaults(ctx, nil)
		if err != nil {
			return err
		}
		if seeded.Seeded {
			a.logger.Info("seeded default habits", "count", len(seeded.Habits))
		}
	}

	perm, err := a.scheduler.RequestPermission(ctx, nil)
	if err != nil {
		a.logger.Warn("permission request failed", "error", err)
	} else if !perm.Granted {
		a.logger.Warn("notifications not granted; alarms will be scheduled but not presented")
	}

	scheduled, err := a.scheduler.ScheduleAll(ctx, nil)
	if err != nil {
		return err
	}
	a.logger.Info("alarms scheduled", "armed", scheduled.Armed, "failed", scheduled.Failed)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	a.logger.Info("received shutdown signal, cancelling alarms")
	if _, err := a.scheduler.CancelAll(context.Background(), nil); err != nil {
		a.logger.Warn("failed to cancel alarms on shutdown", "error", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/logging"
	"github.com/catgar/catgar/internal/scheduler"
	"github.com/catgar/catgar/internal/syncer"
)

var daemonInterval time.Duration

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run continuous periodic syncs",
	Long: `Runs an immediate sync, then repeats on the configured interval
until interrupted. Each pass resumes from the last successful sync, so
a pass that fails is retried from the same day on the next interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log := logging.New(cfg.LogLevel, cfg.LogFormat)

		ctx := cmd.Context()
		sched := scheduler.New(daemonInterval, func(jobCtx context.Context) error {
			return runSync(jobCtx, syncer.Options{})
		}, log)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()

		log.Info("daemon started", "interval", daemonInterval.String())
		<-ctx.Done()
		log.Info("daemon stopping")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	daemonCmd.Flags().DurationVar(&daemonInterval, "interval", 6*time.Hour, "Time between sync passes")
}

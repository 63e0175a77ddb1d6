package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/garmin"
	"github.com/catgar/catgar/internal/influx"
	"github.com/catgar/catgar/internal/logging"
	"github.com/catgar/catgar/internal/state"
	"github.com/catgar/catgar/internal/syncer"
)

var rootCmd = &cobra.Command{
	Use:   "catgar [date]",
	Short: "catGar syncs Garmin Connect health metrics to InfluxDB",
	Long: `catGar pulls daily wellness data (steps, sleep, heart rate, stress,
HRV, body composition, training metrics) and per-activity details from
Garmin Connect and writes them as InfluxDB points.

With no arguments it resumes from the day after the last successful
sync. Pass a date (YYYY-MM-DD) to sync a single day, --days N for the
past N days, or --backfill to find and sync all available history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := syncer.Options{Days: syncDays, Backfill: backfill}
		if len(args) == 1 {
			opts.Date = args[0]
		}
		return runSync(cmd.Context(), opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Sync flags
var syncDays int
var backfill bool

// errSyncIncomplete marks a run that finished with collector errors.
var errSyncIncomplete = errors.New("sync finished with errors")

func runSync(ctx context.Context, opts syncer.Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	store, err := state.Open(cfg.StateDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	gc := garmin.NewClient(cfg, log)
	if err := gc.Authenticate(ctx); err != nil {
		return err
	}

	ic, err := influx.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer ic.Close()
	if err := ic.EnsureBucket(ctx); err != nil {
		return err
	}

	runner := syncer.NewRunner(gc, ic, log)

	// The local calendar date, so an evening run east of UTC syncs the
	// day the user is living in, not the UTC one.
	start, end, err := syncer.ResolveRange(ctx, opts, time.Now(),
		store.LastSyncDay, runner.ProbeDay)
	if err != nil {
		var upToDate syncer.ErrUpToDate
		if errors.As(err, &upToDate) {
			log.Info("nothing to do", "last_sync", upToDate.LastDay.Format(garmin.DateFormat))
			return nil
		}
		return err
	}
	log.Info("syncing range",
		"start", start.Format(garmin.DateFormat), "end", end.Format(garmin.DateFormat))

	startedAt := time.Now().UTC()
	summary, err := runner.Run(ctx, start, end)
	if err != nil {
		return err
	}

	if err := store.RecordRun(state.Run{
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		StartDay:   start,
		EndDay:     end,
		Days:       summary.Days,
		Points:     summary.Total,
		Errors:     summary.Errors,
	}); err != nil {
		log.Warn("failed to record sync run", "error", err)
	}

	syncer.PrintSummary(os.Stdout, summary)
	log.Info("sync complete", "points", summary.Total, "days", summary.Days)

	if summary.Errors > 0 {
		log.Warn("sync finished with errors", "errors", summary.Errors)
		return errSyncIncomplete
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&syncDays, "days", 0, "Sync the past N days")
	rootCmd.Flags().BoolVar(&backfill, "backfill", false, "Backfill all available historical data (up to 5 years)")
	rootCmd.MarkFlagsMutuallyExclusive("days", "backfill")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(daemonCmd)
}

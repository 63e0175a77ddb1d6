package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/catalog"
	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/influx"
	"github.com/catgar/catgar/internal/logging"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the data catalog of all tracked measurements",
	Long: `Prints a detailed reference of every InfluxDB measurement catGar
writes: fields, tags, source endpoints, and example queries. Useful for
dashboard planning and as context for data exploration.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog.PrintCatalog(os.Stdout)
	},
}

var catalogDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Query InfluxDB and summarize the data actually stored",
	Long: `Queries InfluxDB for each catalog measurement and prints data
availability, per-field statistics, tag distributions, and histograms
for key metrics over the chosen window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log := logging.New(cfg.LogLevel, cfg.LogFormat)

		ic, err := influx.Connect(cfg, log)
		if err != nil {
			return err
		}
		defer ic.Close()

		summary := catalog.Collect(cmd.Context(), ic, catalogDays, log)
		catalog.PrintSummary(os.Stdout, summary, catalogDays)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	summaryCmd.Flags().IntVar(&catalogDays, "catalog-days", 7, "Number of days to include in the summary")
}

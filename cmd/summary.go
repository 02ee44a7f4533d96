package cmd

import (
	"github.com/spf13/cobra"

	"riskboard/core"
	"riskboard/internal/contract"
)

// summaryCmd prints per-race aggregate statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary [data-path]",
	Short: "Show per-race score statistics for the filtered dataset.",
	Long: `Aggregate the filtered dataset by race and report count, mean, median,
and standard deviation of decile scores plus the observed recidivism rate.

Examples:
  # Summarize the whole dataset
  riskboard summary compas.csv

  # Summarize one age band
  riskboard summary compas.csv --age-group "Greater than 45"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run summary analysis", err)
		}
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"riskboard/core"
	"riskboard/internal/contract"
)

// trendCmd renders risk score trends by prior conviction count.
var trendCmd = &cobra.Command{
	Use:   "trend [data-path]",
	Short: "Show average risk score and recidivism rate by prior convictions.",
	Long: `Bucket defendants by prior conviction count and chart two series over
the buckets: the normalized mean decile score and the observed recidivism rate.

Useful for checking whether the score tracks actual reoffense outcomes across
criminal history levels, overall or within a demographic slice.

Examples:
  # Trend over the whole dataset
  riskboard trend compas.csv

  # Trend for a single race and age band
  riskboard trend compas.csv --races "African-American" --age-group "Less than 25"

  # Export the long-format series for plotting
  riskboard trend compas.csv --output csv --output-file trend.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}

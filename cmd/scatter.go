package cmd

import (
	"github.com/spf13/cobra"

	"riskboard/core"
	"riskboard/internal/contract"
)

// scatterCmd lists defendant-level age/score points.
var scatterCmd = &cobra.Command{
	Use:   "scatter [data-path]",
	Short: "Show defendant-level decile scores versus age.",
	Long: `Project the filtered dataset onto per-defendant points of age and decile
score, keeping name, charge, and outcome as hover context. Records missing an
age or a score are dropped.

Examples:
  # Top points for the whole dataset
  riskboard scatter compas.csv

  # Narrow to one demographic slice
  riskboard scatter compas.csv --races "Hispanic,Caucasian" --age-group "25 - 45"

  # Dump every point for external charting
  riskboard scatter compas.csv --output json --output-file scatter.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScatter(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run scatter analysis", err)
		}
	},
}

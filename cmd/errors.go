package cmd

import (
	"github.com/spf13/cobra"

	"riskboard/core"
	"riskboard/internal/contract"
)

// errorsCmd prints the published per-race error rate table.
var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Show published false positive and false negative rates by race.",
	Long: `Print the per-race false positive and false negative rates from the
ProPublica COMPAS analysis. These figures are fixed reference values and do not
depend on a loaded dataset, so no data path is required.

Examples:
  # Human-readable table
  riskboard errors

  # Long-format rows for charting
  riskboard errors --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: staticSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteErrorRates(cfg); err != nil {
			contract.LogFatal("Cannot print error rates", err)
		}
	},
}

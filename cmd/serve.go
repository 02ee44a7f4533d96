package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"riskboard/internal/server"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve [data-path]",
	Short: "Serve the chart collections over an HTTP JSON API.",
	Long: `Start an HTTP server exposing the trend, scatter, error-rate, and summary
collections as JSON endpoints for a dashboard frontend.

Endpoints:
  GET /healthz          - liveness probe
  GET /api/trend        - score and recidivism series by prior convictions
  GET /api/scatter      - defendant-level age/score points
  GET /api/error-rates  - published per-race error rates
  GET /api/summary      - per-race score statistics
  GET /api/options      - observed filter choices for the frontend
  GET /api/runs         - recent pipeline runs (when run tracking is on)

Filters are query parameters: races (comma-separated), age_group, limit.

Examples:
  # Serve on the default address
  riskboard serve compas.csv

  # Serve on a custom port with run tracking
  riskboard serve compas.csv --listen :9000 --runs-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.NewServer(cfg, cacheManager).ListenAndServe(ctx)
	},
}

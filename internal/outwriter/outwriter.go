// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"riskboard/internal/contract"
	"riskboard/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrend prints the trend results using the configured output format.
func (ow *OutWriter) WriteTrend(points []schema.LongSeriesPoint, bins []schema.AggregatedBin, cfg *contract.Config, duration time.Duration) error {
	return WriteTrendResults(points, bins, cfg, duration)
}

// WriteScatter prints the scatter points using the configured output format.
func (ow *OutWriter) WriteScatter(points []schema.ScatterPoint, cfg *contract.Config, duration time.Duration) error {
	return WriteScatterResults(points, cfg, duration)
}

// WriteSummary prints the per-race summary statistics using the configured output format.
func (ow *OutWriter) WriteSummary(summaries []schema.RaceSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteSummaryResults(summaries, cfg, duration)
}

// WriteErrorRates prints the static error-rate reference table using the configured output format.
func (ow *OutWriter) WriteErrorRates(entries []schema.ErrorRateEntry, cfg *contract.Config) error {
	return WriteErrorRateResults(entries, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns
// (names, charge descriptions) in table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric and label columns with borders/padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable text width
		return 12
	}
	if available > 40 {
		// Maximum text width to keep rows scannable
		return 40
	}
	return available
}

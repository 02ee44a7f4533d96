package core

import (
	"context"
	"strings"
	"time"

	"riskboard/internal/contract"
	"riskboard/internal/outwriter"
	"riskboard/schema"
)

// FilterForConfig resolves the configured selection against the loaded
// records: a nil race selection means "all observed races", matching the
// dashboard's default where every race option starts checked.
func FilterForConfig(cfg *contract.Config, records []schema.Record) []schema.Record {
	races := cfg.Races
	if races == nil {
		races = RaceOptions(records)
	}
	return ApplyFilter(records, races, cfg.AgeGroup)
}

// ExecuteTrend runs the full trend pipeline and prints the long-format
// series points. It serves as the main entry point for the 'trend' command.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	records, err := LoadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	filtered := FilterForConfig(cfg, records)
	bins := AggregateBins(filtered)
	points := AggregateTrend(filtered)
	duration := time.Since(start)
	RecordRun(mgr, "trend", cfg, start, len(records), len(filtered))
	return outwriter.NewOutWriter().WriteTrend(points, bins, cfg, duration)
}

// ExecuteScatter runs the scatter projection and prints the points. It
// serves as the main entry point for the 'scatter' command.
func ExecuteScatter(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	records, err := LoadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	filtered := FilterForConfig(cfg, records)
	points := ProjectScatter(filtered)
	duration := time.Since(start)
	RecordRun(mgr, "scatter", cfg, start, len(records), len(filtered))
	return outwriter.NewOutWriter().WriteScatter(points, cfg, duration)
}

// ExecuteSummary runs the per-race summary statistics and prints the table.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	records, err := LoadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	filtered := FilterForConfig(cfg, records)
	summaries := SummarizeByRace(filtered)
	duration := time.Since(start)
	RecordRun(mgr, "summary", cfg, start, len(records), len(filtered))
	return outwriter.NewOutWriter().WriteSummary(summaries, cfg, duration)
}

// ExecuteErrorRates prints the static error-rate reference table. No dataset
// is loaded; the table is asserted ground truth.
func ExecuteErrorRates(cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteErrorRates(ErrorRateRows(), cfg)
}

// RecordRun writes one run-history row. Storage failures only warn; run
// tracking must never break the pipeline itself.
func RecordRun(mgr contract.CacheManager, command string, cfg *contract.Config, start time.Time, rowsLoaded, rowsFiltered int) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, command, cfg.DataPath)
	if err != nil {
		contract.LogWarn("cannot begin run record", err)
		return
	}

	var raceFilter *string
	if cfg.Races != nil {
		joined := strings.Join(cfg.Races, ",")
		raceFilter = &joined
	}
	if err := store.EndRun(runID, time.Now(), rowsLoaded, rowsFiltered, raceFilter, cfg.AgeGroup); err != nil {
		contract.LogWarn("cannot finish run record", err)
	}
}

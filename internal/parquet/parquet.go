// Package parquet provides data structures and functions for exporting
// riskboard chart datasets and run history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"riskboard/schema"
)

// TrendPoint is one long-format trend row as stored on disk. It mirrors the
// chart dataset the dashboard feeds its multi-series line renderer.
type TrendPoint struct {
	// PriorConvictions is the bin label on the category axis
	PriorConvictions string `parquet:"prior_convictions,snappy"`

	// Value is the normalized score or recidivism rate, in [0,1]
	Value float64 `parquet:"value,snappy"`

	// Series names the measure this point belongs to
	Series string `parquet:"series,snappy"`
}

// ScatterSample is one age-versus-score point as stored on disk.
type ScatterSample struct {
	Name         string `parquet:"name,snappy"`
	ChargeDesc   string `parquet:"charge_desc,snappy"`
	Jurisdiction string `parquet:"jurisdiction,snappy"`
	Age          int32  `parquet:"age,snappy"`
	Sex          string `parquet:"sex,snappy"`
	Race         string `parquet:"race,snappy"`
	DecileScore  int32  `parquet:"decile_score,snappy"`

	// RecidivismStatus is the human-readable outcome label used to color
	// the scatter facets
	RecidivismStatus string `parquet:"recidivism_status,snappy"`
}

// RaceSummaryRow is one per-race summary statistics row as stored on disk.
type RaceSummaryRow struct {
	Race           string  `parquet:"race,snappy"`
	Count          int32   `parquet:"count,snappy"`
	MeanDecile     float64 `parquet:"mean_decile,snappy"`
	MedianDecile   float64 `parquet:"median_decile,snappy"`
	StdDevDecile   float64 `parquet:"stddev_decile,snappy"`
	RecidivismRate float64 `parquet:"recidivism_rate,snappy"`
	Unclassified   int32   `parquet:"unclassified,snappy"`
}

// ErrorRateRow is one long-format error-rate reference row as stored on disk.
type ErrorRateRow struct {
	Race    string  `parquet:"race,snappy"`
	Metric  string  `parquet:"metric,snappy"`
	Percent float64 `parquet:"percent,snappy"`
}

// PipelineRun represents a single pipeline run with metadata. This struct
// maps to the riskboard_runs database table.
type PipelineRun struct {
	// RunID is the unique identifier for this pipeline run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Command is the pipeline entry point that ran (trend, scatter, summary)
	Command string `parquet:"command,snappy"`

	// SourcePath is the dataset file the run loaded
	SourcePath string `parquet:"source_path,snappy"`

	// RowsLoaded is the record count before filtering
	RowsLoaded int32 `parquet:"rows_loaded,snappy"`

	// RowsFiltered is the record count after filtering
	RowsFiltered int32 `parquet:"rows_filtered,snappy"`

	// RaceFilter is the comma-joined race selection (nullable, nil means all)
	RaceFilter *string `parquet:"race_filter,optional,snappy"`

	// AgeGroup is the age band selection applied to the run
	AgeGroup string `parquet:"age_group,snappy"`
}

// ConvertTrendPoints maps in-memory series points to their Parquet rows.
func ConvertTrendPoints(points []schema.LongSeriesPoint) []TrendPoint {
	rows := make([]TrendPoint, len(points))
	for i, p := range points {
		rows[i] = TrendPoint{
			PriorConvictions: string(p.Bin),
			Value:            p.Value,
			Series:           string(p.Series),
		}
	}
	return rows
}

// ConvertScatterPoints maps in-memory scatter points to their Parquet rows.
func ConvertScatterPoints(points []schema.ScatterPoint) []ScatterSample {
	rows := make([]ScatterSample, len(points))
	for i, p := range points {
		rows[i] = ScatterSample{
			Name:             p.Name,
			ChargeDesc:       p.ChargeDesc,
			Jurisdiction:     p.Jurisdiction,
			Age:              int32(p.Age),
			Sex:              p.Sex,
			Race:             p.Race,
			DecileScore:      int32(p.DecileScore),
			RecidivismStatus: string(p.RecidivismStatus),
		}
	}
	return rows
}

// ConvertRaceSummaries maps in-memory summary rows to their Parquet rows.
func ConvertRaceSummaries(summaries []schema.RaceSummary) []RaceSummaryRow {
	rows := make([]RaceSummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = RaceSummaryRow{
			Race:           s.Race,
			Count:          int32(s.Count),
			MeanDecile:     s.MeanDecile,
			MedianDecile:   s.MedianDecile,
			StdDevDecile:   s.StdDevDecile,
			RecidivismRate: s.RecidivismRate,
			Unclassified:   int32(s.Unclassified),
		}
	}
	return rows
}

// ConvertErrorRateEntries maps the error-rate reference entries to their
// Parquet rows.
func ConvertErrorRateEntries(entries []schema.ErrorRateEntry) []ErrorRateRow {
	rows := make([]ErrorRateRow, len(entries))
	for i, e := range entries {
		rows[i] = ErrorRateRow{
			Race:    e.Race,
			Metric:  string(e.Metric),
			Percent: e.Percent,
		}
	}
	return rows
}

// ConvertPipelineRunRecords maps run-history records to their Parquet rows.
func ConvertPipelineRunRecords(records []schema.PipelineRunRecord) []PipelineRun {
	rows := make([]PipelineRun, len(records))
	for i, r := range records {
		rows[i] = PipelineRun{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			Command:       r.Command,
			SourcePath:    r.SourcePath,
			RowsLoaded:    r.RowsLoaded,
			RowsFiltered:  r.RowsFiltered,
			RaceFilter:    r.RaceFilter,
			AgeGroup:      r.AgeGroup,
		}
	}
	return rows
}

// writeParquet writes any row slice to outputPath using struct schema
// inference from the row type's tags.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteTrendPointsParquet writes trend points to a Parquet file.
func WriteTrendPointsParquet(rows []TrendPoint, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WriteScatterSamplesParquet writes scatter samples to a Parquet file.
func WriteScatterSamplesParquet(rows []ScatterSample, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WriteRaceSummariesParquet writes summary rows to a Parquet file.
func WriteRaceSummariesParquet(rows []RaceSummaryRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WriteErrorRatesParquet writes error-rate rows to a Parquet file.
func WriteErrorRatesParquet(rows []ErrorRateRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WritePipelineRunsParquet writes run-history rows to a Parquet file.
func WritePipelineRunsParquet(rows []PipelineRun, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// MockFetchPipelineRuns generates sample PipelineRun data for demonstration.
func MockFetchPipelineRuns() []PipelineRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(1200 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	races1 := "African-American,Caucasian"

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(640 * time.Millisecond)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, races3 are nil to demonstrate nullable fields

	return []PipelineRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			Command:       "trend",
			SourcePath:    "compas.csv",
			RowsLoaded:    7214,
			RowsFiltered:  4890,
			RaceFilter:    &races1,
			AgeGroup:      "Less than 25",
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			Command:       "summary",
			SourcePath:    "compas.csv",
			RowsLoaded:    7214,
			RowsFiltered:  7214,
			RaceFilter:    nil, // All races pass - nullable field
			AgeGroup:      "All",
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			Command:       "scatter",
			SourcePath:    "compas.csv",
			RowsLoaded:    0,
			RowsFiltered:  0,
			RaceFilter:    nil,
			AgeGroup:      "All",
		},
	}
}

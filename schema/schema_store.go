package schema

import "time"

// PipelineRunRecord represents a row from the riskboard_runs table. One row
// is written per pipeline invocation (trend, scatter, summary or an API
// request) so usage can be audited and exported.
type PipelineRunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	RunDurationMs *int32     `json:"run_duration_ms,omitempty"`
	Command       string     `json:"command"`
	SourcePath    string     `json:"source_path"`
	RowsLoaded    int32      `json:"rows_loaded"`
	RowsFiltered  int32      `json:"rows_filtered"`
	RaceFilter    *string    `json:"race_filter,omitempty"` // Comma-joined selected races; nil when all races pass
	AgeGroup      string     `json:"age_group"`
}

// SnapshotStatus represents the status of the dataset snapshot store.
type SnapshotStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunStatus represents the status of the run-history store.
type RunStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	TotalRows     int       `json:"total_rows"` // Sum of rows loaded across all runs
}

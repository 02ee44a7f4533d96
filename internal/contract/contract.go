// Package contract provides interfaces and shared utilities for riskboard's internal architecture.
package contract

import (
	"context"
	"time"

	"riskboard/schema"
)

// DatasetSource defines the necessary operations for reading raw tabular data.
// This allows the record store to be tested without a real file on disk.
type DatasetSource interface {
	// Name returns a stable identity string for the source (e.g. a file path).
	Name() string

	// Fingerprint returns a string that changes whenever the underlying data
	// changes. It is used as part of the snapshot cache key.
	Fingerprint(ctx context.Context) (string, error)

	// ReadAll returns the full raw table: a header row plus data rows.
	ReadAll(ctx context.Context) (*schema.RawTable, error)
}

// CacheManager defines the interface for managing the persistence stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetSnapshotStore() SnapshotStore
	GetRunStore() RunStore
}

// SnapshotStore defines the interface for dataset snapshot storage. A snapshot
// is the serialized, fully derived record collection for one source
// fingerprint, so repeated invocations skip the parse/derive pass.
type SnapshotStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.SnapshotStatus, error)
	Close() error
}

// RunStore defines the interface for tracking pipeline runs.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID.
	BeginRun(startTime time.Time, command, sourcePath string) (int64, error)

	// EndRun updates the run row with completion data.
	EndRun(runID int64, endTime time.Time, rowsLoaded, rowsFiltered int, raceFilter *string, ageGroup string) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.PipelineRunRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	Close() error
}

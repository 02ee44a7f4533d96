package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/schema"
)

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("riskboard_snapshots"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("bad-name"))
	assert.Error(t, validateTableName("1leading"))
	assert.Error(t, validateTableName("drop table;"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}

func TestSnapshotStoreSQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewSnapshotStore(snapshotTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ts := time.Now().Unix()
	require.NoError(t, store.Set("records|abc", []byte(`[{"name":"alice"}]`), 1, ts))

	value, version, gotTs, err := store.Get("records|abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"name":"alice"}]`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, ts, gotTs)

	// Overwrite replaces the existing row
	require.NoError(t, store.Set("records|abc", []byte(`[]`), 2, ts+1))
	value, version, _, err = store.Get("records|abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
	assert.Equal(t, 2, version)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 1, status.TotalEntries)
}

func TestSnapshotStoreMissingKey(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewSnapshotStore(snapshotTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, _, _, err = store.Get("records|missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSnapshotStoreNoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(snapshotTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("key", []byte("value"), 1, time.Now().Unix()))
	_, _, _, err = store.Get("key")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestSnapshotStoreRejectsBadTableName(t *testing.T) {
	_, err := NewSnapshotStore("bad-name", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestSnapshotStoreRejectsUnknownBackend(t *testing.T) {
	_, err := NewSnapshotStore(snapshotTable, schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported snapshot backend")
}

func TestRunStoreSQLiteLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := time.Now().Add(-time.Second)
	runID, err := store.BeginRun(start, "trend", "data.csv")
	require.NoError(t, err)
	assert.Positive(t, runID)

	races := "Caucasian,Hispanic"
	require.NoError(t, store.EndRun(runID, time.Now(), 100, 40, &races, schema.AgeGroupAll))

	secondID, err := store.BeginRun(time.Now(), "scatter", "data.csv")
	require.NoError(t, err)
	require.NoError(t, store.EndRun(secondID, time.Now(), 100, 100, nil, "25 - 45"))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, secondID, runs[0].RunID)
	assert.Equal(t, "scatter", runs[0].Command)
	assert.Nil(t, runs[0].RaceFilter)
	assert.Equal(t, "25 - 45", runs[0].AgeGroup)

	assert.Equal(t, runID, runs[1].RunID)
	require.NotNil(t, runs[1].RaceFilter)
	assert.Equal(t, "Caucasian,Hispanic", *runs[1].RaceFilter)
	assert.EqualValues(t, 100, runs[1].RowsLoaded)
	assert.EqualValues(t, 40, runs[1].RowsFiltered)
	require.NotNil(t, runs[1].EndTime)
	require.NotNil(t, runs[1].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[1].RunDurationMs, int32(0))

	limited, err := store.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, secondID, limited[0].RunID)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, secondID, status.LastRunID)
	assert.Equal(t, 200, status.TotalRows)
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), "trend", "data.csv")
	require.NoError(t, err)
	assert.Zero(t, runID)
	require.NoError(t, store.EndRun(runID, time.Now(), 0, 0, nil, ""))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestMigrateRunsNoneBackend(t *testing.T) {
	err := MigrateRuns(schema.NoneBackend, "", -1)
	assert.ErrorContains(t, err, "not supported")
}

func TestMigrateRunsSQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// The migrated table must accept run rows
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.Exec(`INSERT INTO riskboard_runs (start_time, command, source_path) VALUES (?, ?, ?)`,
		time.Now().Format(time.RFC3339Nano), "trend", "data.csv")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 0))
}

func TestClearSnapshotsSQLiteRemovesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewSnapshotStore(snapshotTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", []byte("value"), 1, time.Now().Unix()))
	require.NoError(t, store.Close())

	require.NoError(t, ClearSnapshots(schema.SQLiteBackend, dbPath, ""))

	// Clearing a missing file is not an error
	require.NoError(t, ClearSnapshots(schema.SQLiteBackend, dbPath, ""))
}

func TestClearRunsRequiresFilePath(t *testing.T) {
	assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
}

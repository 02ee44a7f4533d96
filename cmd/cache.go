package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"riskboard/internal/contract"
	"riskboard/internal/iocache"
	"riskboard/schema"
)

// cacheSetup loads minimal configuration needed for snapshot cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no run tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on snapshot cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by analysis commands. This avoids dataset
// validation and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the dataset snapshot cache (improves performance)",
	Long: `Manage the parsed-dataset snapshot cache that speeds up repeated runs.

Riskboard caches the parsed record set keyed by the source file's path, size,
and modification time, so repeated commands against the same CSV skip the parse.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  riskboard cache status

  # Clear cache after replacing the dataset file in place
  riskboard cache clear`,
}

// cacheClearCmd clears the snapshot cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset snapshots",
	Long: `Delete all cached dataset snapshots from the configured backend.

Use this when:
- The dataset file was edited without changing its size or mtime
- The cache may be stale or corrupted
- Testing load performance without the cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot table

Examples:
  # Clear SQLite cache (default)
  riskboard cache clear

  # Clear MySQL cache (set connection string via env variable)
  RISKBOARD_SNAPSHOT_BACKEND=mysql RISKBOARD_SNAPSHOT_DB_CONNECT="..." riskboard cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearSnapshots(cfg.SnapshotBackend, iocache.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows snapshot cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the dataset snapshot cache.

Displays:
- Backend type and connection status
- Total number of cached snapshots
- Last and oldest snapshot timestamps
- Cache database size

Examples:
  # Check cache status
  riskboard cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintSnapshotStatus(status)
	},
}

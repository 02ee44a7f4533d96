package contract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"riskboard/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 10000
	DefaultPrecision   = 3
	DefaultListenAddr  = ":8571"
)

// SnapshotVersion is bumped whenever the serialized record layout changes,
// invalidating older snapshot cache entries.
const SnapshotVersion = 1

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string
	Races       []string // Selected races; nil means "all observed races"
	AgeGroup    string   // Selected age group; schema.AgeGroupAll means no age filter
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	ListenAddr string

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Races             string `mapstructure:"races"`
	AgeGroup          string `mapstructure:"age-group"`
	Limit             int    `mapstructure:"limit"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
	RunsBackend       string `mapstructure:"runs-backend"`
	RunsDBConnect     string `mapstructure:"runs-db-connect"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Races != nil {
		clone.Races = make([]string, len(c.Races))
		copy(clone.Races, c.Races)
	}
	return &clone
}

// ProcessAndValidate reads from 'input' and populates 'cfg'. When requireData
// is true the data path must point at a readable file; commands that never
// touch the dataset (errors, version) pass false.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, requireData bool) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return resolveDataPath(cfg, input, requireData)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Filter selection ---
	cfg.Races = SplitCommaList(input.Races) // nil when flag is empty: all races pass
	cfg.AgeGroup = strings.TrimSpace(input.AgeGroup)
	if cfg.AgeGroup == "" {
		cfg.AgeGroup = schema.AgeGroupAll
	}

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. Listen address ---
	cfg.ListenAddr = input.Listen
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	return nil
}

// validateBackendConfigs validates snapshot and runs backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Snapshot Backend Validation ---
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidCacheBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	if err := ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect); err != nil {
		return err
	}

	// --- Runs Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if cfg.RunsBackend != "" {
		if _, ok := schema.ValidCacheBackends[cfg.RunsBackend]; !ok {
			return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
		}
		cfg.RunsDBConnect = input.RunsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
			return err
		}

		// Snapshot and run rows have different schemas, so the two SQLite
		// stores must not share a database file.
		if cfg.SnapshotBackend == schema.SQLiteBackend && cfg.RunsBackend == schema.SQLiteBackend {
			snapshotPath := cfg.SnapshotDBConnect
			if snapshotPath == "" {
				snapshotPath = GetSnapshotDBFilePath()
			}
			runsPath := cfg.RunsDBConnect
			if runsPath == "" {
				runsPath = GetRunsDBFilePath()
			}
			if snapshotPath == runsPath {
				return fmt.Errorf("snapshot and run storage must use different SQLite database files. Both resolve to %q", snapshotPath)
			}
		}
	}

	return nil
}

// resolveDataPath validates the dataset path when a command needs one.
func resolveDataPath(cfg *Config, input *ConfigRawInput, requireData bool) error {
	cfg.DataPath = strings.TrimSpace(input.DataPathStr)
	if !requireData {
		return nil
	}
	if cfg.DataPath == "" {
		return fmt.Errorf("a dataset path is required (pass it as the first argument or set RISKBOARD_DATA)")
	}
	info, err := os.Stat(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("cannot read dataset %q: %w", cfg.DataPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path %q is a directory, expected a CSV file", cfg.DataPath)
	}
	return nil
}

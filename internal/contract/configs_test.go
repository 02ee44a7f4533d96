package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/schema"
)

// validInput returns a raw input that passes validation so individual tests
// only override the field under test.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:           DefaultResultLimit,
		Precision:       DefaultPrecision,
		Output:          string(schema.TextOut),
		Color:           "yes",
		AgeGroup:        schema.AgeGroupAll,
		SnapshotBackend: string(schema.NoneBackend),
		RunsBackend:     string(schema.NoneBackend),
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(_ *ConfigRawInput) {},
		},
		{
			name:    "zero limit rejected",
			mutate:  func(in *ConfigRawInput) { in.Limit = 0 },
			wantErr: "limit must be greater than 0",
		},
		{
			name:    "excessive limit rejected",
			mutate:  func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			wantErr: "limit must be greater than 0",
		},
		{
			name:    "bad precision rejected",
			mutate:  func(in *ConfigRawInput) { in.Precision = 9 },
			wantErr: "precision must be between 1 and 6",
		},
		{
			name:    "bad output rejected",
			mutate:  func(in *ConfigRawInput) { in.Output = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "bad color rejected",
			mutate:  func(in *ConfigRawInput) { in.Color = "maybe" },
			wantErr: "invalid --color value",
		},
		{
			name:    "bad snapshot backend rejected",
			mutate:  func(in *ConfigRawInput) { in.SnapshotBackend = "oracle" },
			wantErr: "invalid snapshot backend",
		},
		{
			name: "mysql backend requires connection string",
			mutate: func(in *ConfigRawInput) {
				in.SnapshotBackend = string(schema.MySQLBackend)
			},
			wantErr: "db connection string is required",
		},
		{
			name: "postgres connection string validated",
			mutate: func(in *ConfigRawInput) {
				in.RunsBackend = string(schema.PostgreSQLBackend)
				in.RunsDBConnect = "host=localhost"
			},
			wantErr: "must contain 'dbname='",
		},
		{
			name: "sqlite stores must not share a file",
			mutate: func(in *ConfigRawInput) {
				in.SnapshotBackend = string(schema.SQLiteBackend)
				in.SnapshotDBConnect = "/tmp/rb.db"
				in.RunsBackend = string(schema.SQLiteBackend)
				in.RunsDBConnect = "/tmp/rb.db"
			},
			wantErr: "must use different SQLite database files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input, false)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestProcessAndValidateFilterSelection(t *testing.T) {
	input := validInput()
	input.Races = "Caucasian, Hispanic ,,African-American"
	input.AgeGroup = " 25 - 45 "

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, false))

	assert.Equal(t, []string{"Caucasian", "Hispanic", "African-American"}, cfg.Races)
	assert.Equal(t, "25 - 45", cfg.AgeGroup)
}

func TestProcessAndValidateDefaultsAllAgeGroups(t *testing.T) {
	input := validInput()
	input.AgeGroup = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, false))

	assert.Nil(t, cfg.Races)
	assert.Equal(t, schema.AgeGroupAll, cfg.AgeGroup)
}

func TestResolveDataPath(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "scores.csv")
	require.NoError(t, os.WriteFile(dataFile, []byte("name\n"), 0o644))

	t.Run("existing file accepted", func(t *testing.T) {
		input := validInput()
		input.DataPathStr = dataFile
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input, true))
		assert.Equal(t, dataFile, cfg.DataPath)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		input := validInput()
		input.DataPathStr = filepath.Join(dir, "nope.csv")
		err := ProcessAndValidate(&Config{}, input, true)
		assert.ErrorContains(t, err, "cannot read dataset")
	})

	t.Run("directory rejected", func(t *testing.T) {
		input := validInput()
		input.DataPathStr = dir
		err := ProcessAndValidate(&Config{}, input, true)
		assert.ErrorContains(t, err, "is a directory")
	})

	t.Run("empty path rejected when required", func(t *testing.T) {
		err := ProcessAndValidate(&Config{}, validInput(), true)
		assert.ErrorContains(t, err, "dataset path is required")
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		DataPath: "scores.csv",
		Races:    []string{"Caucasian", "Other"},
		AgeGroup: "Less than 25",
	}
	clone := cfg.Clone()

	clone.Races[0] = "Hispanic"
	assert.Equal(t, "Caucasian", cfg.Races[0], "clone must not share the races slice")
	assert.Equal(t, cfg.DataPath, clone.DataPath)
}

// Package dataset implements DatasetSource backends for raw tabular input.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"riskboard/internal/contract"
	"riskboard/schema"
)

// CSVSource implements the DatasetSource interface by reading a local CSV file.
type CSVSource struct {
	path string
}

var _ contract.DatasetSource = &CSVSource{} // Compile-time check

// NewCSVSource creates a new source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name implements the DatasetSource interface.
func (s *CSVSource) Name() string {
	return s.path
}

// Fingerprint implements the DatasetSource interface. Size plus modification
// time is enough to detect the static dataset being swapped out underneath a
// long-running server; content hashing would cost a full extra read.
func (s *CSVSource) Fingerprint(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", &contract.LoadError{Source: s.path, Err: err}
	}
	return fmt.Sprintf("%s|%d|%d", s.path, info.Size(), info.ModTime().UnixNano()), nil
}

// ReadAll implements the DatasetSource interface.
func (s *CSVSource) ReadAll(ctx context.Context) (*schema.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, &contract.LoadError{Source: s.path, Err: err}
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Ragged rows are caught during parsing, with row numbers
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &contract.LoadError{Source: s.path, Err: err}
	}
	if len(records) == 0 {
		return nil, &contract.LoadError{Source: s.path, Err: fmt.Errorf("file is empty")}
	}

	columns := records[0]
	if len(columns) > 0 {
		// Strip a UTF-8 BOM so the first column name matches lookups
		columns[0] = strings.TrimPrefix(columns[0], "\uFEFF")
	}

	return &schema.RawTable{
		Columns: columns,
		Rows:    records[1:],
	}, nil
}

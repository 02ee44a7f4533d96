// Package core has the data transformation pipeline: loading, filtering,
// aggregation and reshaping of COMPAS records into chart-ready collections.
package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"riskboard/internal/contract"
	"riskboard/schema"
)

// Dataset column names, as they appear in the ProPublica CSV export.
const (
	colName     = "name"
	colSex      = "sex"
	colAge      = "age"
	colAgeGroup = "age_cat"
	colRace     = "race"
	colPriors   = "priors_count"
	colDecile   = "decile_score"
	colCharge   = "c_charge_desc"
	colState    = "state"
	colRecid    = "two_year_recid"
)

// requiredColumns must all be present in the source header; absence is a
// fatal load error.
var requiredColumns = []string{
	colName, colSex, colAge, colAgeGroup, colRace,
	colPriors, colDecile, colCharge, colState, colRecid,
}

// RecordStore loads and normalizes the raw dataset into typed records. It
// owns the canonical record collection; downstream components only ever see
// freshly derived copies.
type RecordStore struct {
	source contract.DatasetSource
}

// NewRecordStore creates a store reading from the given source.
func NewRecordStore(source contract.DatasetSource) *RecordStore {
	return &RecordStore{source: source}
}

// Load parses the source into typed records, deriving RecidivismStatus and
// PriorsBin for each row. It returns a *contract.LoadError when the source is
// unreadable, a required column is missing, or a required cell cannot be
// parsed.
func (s *RecordStore) Load(ctx context.Context) ([]schema.Record, error) {
	table, err := s.source.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTable(s.source.Name(), table)
}

// ParseTable converts a raw table into derived records. Split out from Load
// so snapshot-restore paths and tests can feed tables directly.
func ParseTable(sourceName string, table *schema.RawTable) ([]schema.Record, error) {
	index, err := columnIndex(table.Columns)
	if err != nil {
		return nil, &contract.LoadError{Source: sourceName, Err: err}
	}

	records := make([]schema.Record, 0, len(table.Rows))
	for i, row := range table.Rows {
		record, err := parseRow(row, index)
		if err != nil {
			return nil, &contract.LoadError{Source: sourceName, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		records = append(records, record)
	}
	return records, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(columns []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[strings.TrimSpace(col)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", contract.ErrMissingColumn, required)
		}
	}
	return index, nil
}

// parseRow converts one raw row into a typed record with derived fields.
func parseRow(row []string, index map[string]int) (schema.Record, error) {
	cell := func(col string) (string, error) {
		pos := index[col]
		if pos >= len(row) {
			return "", fmt.Errorf("row has %d fields, column %q is at position %d", len(row), col, pos)
		}
		return strings.TrimSpace(row[pos]), nil
	}

	var record schema.Record
	var err error

	if record.Name, err = cell(colName); err != nil {
		return record, err
	}
	if record.Sex, err = cell(colSex); err != nil {
		return record, err
	}
	if record.AgeGroup, err = cell(colAgeGroup); err != nil {
		return record, err
	}
	if record.Race, err = cell(colRace); err != nil {
		return record, err
	}
	if record.ChargeDesc, err = cell(colCharge); err != nil {
		return record, err
	}
	if record.Jurisdiction, err = cell(colState); err != nil {
		return record, err
	}

	// Age and decile score are the scatter plotting coordinates; either may
	// be absent, so they parse to nil rather than failing the load.
	if record.Age, err = parseOptionalInt(row, index, colAge); err != nil {
		return record, err
	}
	if record.DecileScore, err = parseOptionalInt(row, index, colDecile); err != nil {
		return record, err
	}
	if record.DecileScore != nil && (*record.DecileScore < 1 || *record.DecileScore > 10) {
		return record, fmt.Errorf("decile_score %d out of range 1-10", *record.DecileScore)
	}

	// Priors count and outcome must be present on every row.
	if record.PriorsCount, err = parseRequiredInt(row, index, colPriors); err != nil {
		return record, err
	}
	if record.TwoYearRecid, err = parseRequiredInt(row, index, colRecid); err != nil {
		return record, err
	}
	if record.TwoYearRecid != 0 && record.TwoYearRecid != 1 {
		return record, fmt.Errorf("%w (got %d)", contract.ErrBadOutcome, record.TwoYearRecid)
	}

	// Derived fields, computed once and immutable afterwards.
	record.RecidivismStatus = schema.StatusForOutcome(record.TwoYearRecid)
	record.PriorsBin = schema.BinFor(record.PriorsCount)

	return record, nil
}

// parseOptionalInt parses a cell into *int, mapping empty cells to nil.
func parseOptionalInt(row []string, index map[string]int, col string) (*int, error) {
	pos := index[col]
	if pos >= len(row) {
		return nil, fmt.Errorf("row has %d fields, column %q is at position %d", len(row), col, pos)
	}
	raw := strings.TrimSpace(row[pos])
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}
	return &value, nil
}

// parseRequiredInt parses a cell into int, rejecting empty cells.
func parseRequiredInt(row []string, index map[string]int, col string) (int, error) {
	value, err := parseOptionalInt(row, index, col)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, fmt.Errorf("column %q: empty cell", col)
	}
	return *value, nil
}

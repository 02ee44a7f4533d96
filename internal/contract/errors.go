package contract

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates the dataset header lacks a required column.
var ErrMissingColumn = errors.New("required column missing")

// ErrBadOutcome indicates a two_year_recid cell held something other than 0 or 1.
var ErrBadOutcome = errors.New("two_year_recid must be 0 or 1")

// LoadError reports that a dataset source could not be turned into records.
// Loading is fatal-at-load: the pipeline never proceeds past a LoadError.
type LoadError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As matching.
func (e *LoadError) Unwrap() error {
	return e.Err
}

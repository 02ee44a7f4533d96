package core

import "riskboard/schema"

// errorRateRow is one wide-format row of the static error-rate reference
// table: the published false positive and false negative percentages for one
// race group. These are precomputed external statistics asserted as ground
// truth, not derived from the loaded dataset.
type errorRateRow struct {
	race          string
	falsePositive float64
	falseNegative float64
}

// errorRates is the fixed wide table, in display order.
var errorRates = []errorRateRow{
	{"African-American", 7.5, 31.5},
	{"Asian", 4.0, 19.0},
	{"Caucasian", 3.9, 31.0},
	{"Hispanic", 4.1, 30.8},
	{"Native American", 4.2, 32.0},
	{"Other", 1.5, 30.5},
}

// ErrorRateRows reshapes the wide reference table into long format: all
// false-positive entries in race order, then all false-negative entries.
// It always returns exactly len(errorRates)*2 entries.
func ErrorRateRows() []schema.ErrorRateEntry {
	entries := make([]schema.ErrorRateEntry, 0, 2*len(errorRates))
	for _, row := range errorRates {
		entries = append(entries, schema.ErrorRateEntry{
			Race:    row.race,
			Metric:  schema.FalsePositiveRate,
			Percent: row.falsePositive,
		})
	}
	for _, row := range errorRates {
		entries = append(entries, schema.ErrorRateEntry{
			Race:    row.race,
			Metric:  schema.FalseNegativeRate,
			Percent: row.falseNegative,
		})
	}
	return entries
}

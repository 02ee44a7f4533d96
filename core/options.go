package core

import (
	"sort"

	"riskboard/schema"
)

// RaceOptions returns the sorted distinct non-empty race values observed in
// the records. The UI layer builds its race multi-select from this list, and
// it doubles as the effective "select all" set.
func RaceOptions(records []schema.Record) []string {
	return distinctSorted(records, func(r schema.Record) string { return r.Race })
}

// AgeGroupOptions returns the sorted distinct non-empty age-group values
// observed in the records. The UI prepends schema.AgeGroupAll itself.
func AgeGroupOptions(records []schema.Record) []string {
	return distinctSorted(records, func(r schema.Record) string { return r.AgeGroup })
}

func distinctSorted(records []schema.Record, field func(schema.Record) string) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		if value := field(record); value != "" {
			seen[value] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

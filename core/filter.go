package core

import "riskboard/schema"

// ApplyFilter returns the records matching the user's filter selection,
// preserving the original relative order. A record passes iff its race is in
// selectedRaces AND the age-group selection is schema.AgeGroupAll or matches
// the record's age group.
//
// selectedRaces is a set: an empty (or nil) set yields an empty result, not
// an error. Callers wanting "select all" semantics pass the full observed
// race list (see RaceOptions). The input slice is never mutated.
func ApplyFilter(records []schema.Record, selectedRaces []string, selectedAgeGroup string) []schema.Record {
	raceSet := make(map[string]struct{}, len(selectedRaces))
	for _, race := range selectedRaces {
		raceSet[race] = struct{}{}
	}

	filtered := make([]schema.Record, 0, len(records))
	for _, record := range records {
		if _, ok := raceSet[record.Race]; !ok {
			continue
		}
		if selectedAgeGroup != schema.AgeGroupAll && record.AgeGroup != selectedAgeGroup {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

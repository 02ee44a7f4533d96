package core

import (
	"sort"

	"github.com/montanaflynn/stats"

	"riskboard/schema"
)

// SummarizeByRace computes per-race summary statistics over the filtered
// records: member count, mean/median/sample-stddev of the decile score,
// the observed recidivism rate, and how many members carry an unclassified
// priors bin. Rows come back sorted by race. Decile statistics skip members
// whose score is missing; a group needs at least two scores for a stddev,
// otherwise it reports 0.
func SummarizeByRace(filtered []schema.Record) []schema.RaceSummary {
	groups := make(map[string][]schema.Record)
	for _, record := range filtered {
		groups[record.Race] = append(groups[record.Race], record)
	}

	races := make([]string, 0, len(groups))
	for race := range groups {
		races = append(races, race)
	}
	sort.Strings(races)

	summaries := make([]schema.RaceSummary, 0, len(races))
	for _, race := range races {
		members := groups[race]

		var scores stats.Float64Data
		recidivists := 0
		unclassified := 0
		for _, m := range members {
			if m.DecileScore != nil {
				scores = append(scores, float64(*m.DecileScore))
			}
			recidivists += m.TwoYearRecid
			if m.PriorsBin == schema.BinUnclassified {
				unclassified++
			}
		}

		summary := schema.RaceSummary{
			Race:           race,
			Count:          len(members),
			RecidivismRate: float64(recidivists) / float64(len(members)),
			Unclassified:   unclassified,
		}
		if len(scores) > 0 {
			summary.MeanDecile, _ = stats.Mean(scores)
			summary.MedianDecile, _ = stats.Median(scores)
		}
		if len(scores) > 1 {
			summary.StdDevDecile, _ = stats.StandardDeviationSample(scores)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

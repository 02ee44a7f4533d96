package core

import (
	"gonum.org/v1/gonum/stat"

	"riskboard/schema"
)

// AggregateBins groups the filtered records by priors bin and computes the
// per-bin means, in the fixed BinLevels order. Bins with zero members after
// filtering are omitted entirely rather than emitted as zero rows, so a
// vanished bin stays distinguishable from a bin with zero recidivism.
// Unclassified records (priors count outside [0,100]) never appear here; they
// are surfaced through the summary table instead.
func AggregateBins(filtered []schema.Record) []schema.AggregatedBin {
	groups := make(map[schema.PriorsBin][]schema.Record, len(schema.BinLevels))
	for _, record := range filtered {
		if record.PriorsBin == schema.BinUnclassified {
			continue
		}
		groups[record.PriorsBin] = append(groups[record.PriorsBin], record)
	}

	bins := make([]schema.AggregatedBin, 0, len(groups))
	for _, level := range schema.BinLevels {
		members := groups[level]
		if len(members) == 0 {
			continue
		}

		// Mean decile score skips members whose score is missing; the
		// outcome mean runs over every member. A bin where every member
		// lacks a score reports 0; the published dataset never has one.
		var scores, outcomes []float64
		for _, m := range members {
			if m.DecileScore != nil {
				scores = append(scores, float64(*m.DecileScore))
			}
			outcomes = append(outcomes, float64(m.TwoYearRecid))
		}

		var normScore float64
		if len(scores) > 0 {
			// Divide by 10 to map the 1-10 decile scale onto [0,1] so both
			// series share one axis.
			normScore = stat.Mean(scores, nil) / 10
		}

		bins = append(bins, schema.AggregatedBin{
			Bin:            level,
			NormScore:      normScore,
			RecidivismRate: stat.Mean(outcomes, nil),
			Count:          len(members),
		})
	}
	return bins
}

// AggregateTrend reshapes the wide per-bin aggregation into the long-format
// series-point sequence the line renderer consumes: one full pass of score
// points over the present bins, then one full pass of recidivism-rate points.
// The output always has even length, exactly two points per present bin.
func AggregateTrend(filtered []schema.Record) []schema.LongSeriesPoint {
	bins := AggregateBins(filtered)

	points := make([]schema.LongSeriesPoint, 0, 2*len(bins))
	for _, series := range schema.AllSeriesKinds {
		for _, bin := range bins {
			value := bin.NormScore
			if series == schema.RecidivismRateSeries {
				value = bin.RecidivismRate
			}
			points = append(points, schema.LongSeriesPoint{
				Bin:    bin.Bin,
				Value:  value,
				Series: series,
			})
		}
	}
	return points
}

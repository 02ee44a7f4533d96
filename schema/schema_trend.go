package schema

// AggregatedBin is one wide-format aggregation row: the per-bin means over
// the filtered records. Bins with zero members are never materialized, so a
// missing bin and a zero mean stay visually distinguishable downstream.
type AggregatedBin struct {
	Bin            PriorsBin `json:"bin"`
	NormScore      float64   `json:"norm_score"`      // Mean decile score divided by 10, in [0,1]
	RecidivismRate float64   `json:"recidivism_rate"` // Mean two-year outcome, already in [0,1]
	Count          int       `json:"count"`           // Members contributing to the means
}

// LongSeriesPoint is one long-format row for the multi-series line renderer:
// (category label, value, series). The trend output contains exactly two
// points per present bin, grouped by series and ordered by BinLevels within
// each series.
type LongSeriesPoint struct {
	Bin    PriorsBin  `json:"prior_convictions"`
	Value  float64    `json:"value"`
	Series SeriesKind `json:"series"`
}

// ErrorRateEntry is one long-format row of the static per-race error-rate
// reference table. The rates are precomputed external statistics, not derived
// from the loaded dataset.
type ErrorRateEntry struct {
	Race    string      `json:"race"`
	Metric  ErrorMetric `json:"metric"`
	Percent float64     `json:"percent"`
}

// RaceSummary is one row of the per-race summary statistics table computed
// over the filtered records.
type RaceSummary struct {
	Race           string  `json:"race"`
	Count          int     `json:"count"`
	MeanDecile     float64 `json:"mean_decile"`
	MedianDecile   float64 `json:"median_decile"`
	StdDevDecile   float64 `json:"stddev_decile"`
	RecidivismRate float64 `json:"recidivism_rate"`
	Unclassified   int     `json:"unclassified"` // Members whose priors count falls outside [0,100]
}

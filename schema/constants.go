package schema

// Custom string types for type safety.
type (
	// PriorsBin represents an ordered prior-convictions bin level.
	PriorsBin string

	// RecidivismStatus represents the categorical two-year outcome.
	RecidivismStatus string

	// SeriesKind discriminates the two trend chart series.
	SeriesKind string

	// ErrorMetric discriminates the two error-rate metrics.
	ErrorMetric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All prior-convictions bins. The partition over priors_count is right-open:
// (-1,0], (0,2], (2,5], (5,10], (10,20], (20,100]. Counts outside [0,100]
// land in BinUnclassified, which is surfaced but never charted.
const (
	Bin0            PriorsBin = "0"
	Bin1To2         PriorsBin = "1-2"
	Bin3To5         PriorsBin = "3-5"
	Bin6To10        PriorsBin = "6-10"
	Bin11To20       PriorsBin = "11-20"
	Bin21Plus       PriorsBin = "21+"
	BinUnclassified PriorsBin = "unclassified"
)

// BinLevels is the fixed chart order of the bins. BinUnclassified is
// deliberately absent: trend output is restricted to these six levels.
var BinLevels = []PriorsBin{Bin0, Bin1To2, Bin3To5, Bin6To10, Bin11To20, Bin21Plus}

// All recidivism statuses. Total bijection from the binary outcome.
const (
	Recidivism   RecidivismStatus = "Recidivism"
	NoRecidivism RecidivismStatus = "No Recidivism"
)

// All trend series. The string values are the legend labels the rendering
// layer displays, so they must stay stable.
const (
	ScoreSeries          SeriesKind = "Average COMPAS Score"
	RecidivismRateSeries SeriesKind = "Average Recidivism Rate"
)

// AllSeriesKinds returns the series in emission order: the score series is
// emitted as a full pass before the rate series.
var AllSeriesKinds = []SeriesKind{ScoreSeries, RecidivismRateSeries}

// All error-rate metrics.
const (
	FalsePositiveRate ErrorMetric = "False Positive Rate"
	FalseNegativeRate ErrorMetric = "False Negative Rate"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AgeGroupAll is the sentinel age-group selection meaning "no age filter".
const AgeGroupAll = "All"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

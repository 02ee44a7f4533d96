// Package schema has models, enums and global variables for all parts of riskboard.
package schema

// Record represents one defendant row of the COMPAS two-year recidivism dataset.
// It carries the raw case fields plus two derived fields (RecidivismStatus and
// PriorsBin) that are computed once at load time and never mutated afterwards.
type Record struct {
	Name         string `json:"name"`          // Defendant name
	Sex          string `json:"sex"`           // Sex category as recorded in the dataset
	Age          *int   `json:"age"`           // Age in years; nil when the source cell is empty
	AgeGroup     string `json:"age_group"`     // Age group category (e.g. "25 - 45")
	Race         string `json:"race"`          // Race category as recorded in the dataset
	PriorsCount  int    `json:"priors_count"`  // Number of prior convictions
	DecileScore  *int   `json:"decile_score"`  // COMPAS decile score 1-10; nil when missing
	ChargeDesc   string `json:"charge_desc"`   // Description of the current charge
	Jurisdiction string `json:"jurisdiction"`  // State/jurisdiction of the case
	TwoYearRecid int    `json:"two_year_recid"` // Binary outcome: 1 if reoffended within two years

	RecidivismStatus RecidivismStatus `json:"recidivism_status"` // Derived from TwoYearRecid
	PriorsBin        PriorsBin        `json:"priors_bin"`        // Derived from PriorsCount
}

// RawTable is the untyped tabular form a DatasetSource produces before the
// record store parses it into Records.
type RawTable struct {
	Columns []string   // Header row, in source order
	Rows    [][]string // Data rows, each len(Columns) wide
}

// ScatterPoint is one plottable point for the faceted age-vs-score scatter.
// Records missing either plotting coordinate (age or decile score) never
// become points, so both fields are plain ints here.
type ScatterPoint struct {
	Name             string           `json:"name"`
	ChargeDesc       string           `json:"charge_desc"`
	Jurisdiction     string           `json:"jurisdiction"`
	Age              int              `json:"age"`
	Sex              string           `json:"sex"`
	Race             string           `json:"race"`
	DecileScore      int              `json:"decile_score"`
	RecidivismStatus RecidivismStatus `json:"recidivism_status"`
}

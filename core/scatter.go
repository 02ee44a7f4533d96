package core

import "riskboard/schema"

// ProjectScatter maps filtered records onto scatter points, preserving order.
// Records missing either plotting coordinate (age or decile score) are
// silently dropped: a point with no position cannot be plotted, and the drop
// is documented policy rather than an error.
func ProjectScatter(filtered []schema.Record) []schema.ScatterPoint {
	points := make([]schema.ScatterPoint, 0, len(filtered))
	for _, record := range filtered {
		if record.Age == nil || record.DecileScore == nil {
			continue
		}
		points = append(points, schema.ScatterPoint{
			Name:             record.Name,
			ChargeDesc:       record.ChargeDesc,
			Jurisdiction:     record.Jurisdiction,
			Age:              *record.Age,
			Sex:              record.Sex,
			Race:             record.Race,
			DecileScore:      *record.DecileScore,
			RecidivismStatus: record.RecidivismStatus,
		})
	}
	return points
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/schema"
)

func TestSummarizeByRace(t *testing.T) {
	records := []schema.Record{
		rec("Caucasian", "25 - 45", 0, 2, 0),
		rec("Caucasian", "25 - 45", 1, 4, 1),
		rec("Caucasian", "25 - 45", 3, 6, 1),
		rec("African-American", "Less than 25", 2, 8, 1),
	}

	summaries := SummarizeByRace(records)
	require.Len(t, summaries, 2)

	// Sorted by race.
	assert.Equal(t, "African-American", summaries[0].Race)
	assert.Equal(t, "Caucasian", summaries[1].Race)

	caucasian := summaries[1]
	assert.Equal(t, 3, caucasian.Count)
	assert.InDelta(t, 4.0, caucasian.MeanDecile, 1e-9)
	assert.InDelta(t, 4.0, caucasian.MedianDecile, 1e-9)
	assert.InDelta(t, 2.0, caucasian.StdDevDecile, 1e-9)
	assert.InDelta(t, 2.0/3.0, caucasian.RecidivismRate, 1e-9)
	assert.Zero(t, caucasian.Unclassified)

	single := summaries[0]
	assert.Equal(t, 1, single.Count)
	assert.InDelta(t, 8.0, single.MeanDecile, 1e-9)
	assert.Zero(t, single.StdDevDecile, "a single score has no sample stddev")
	assert.InDelta(t, 1.0, single.RecidivismRate, 1e-9)
}

func TestSummarizeByRaceMissingScores(t *testing.T) {
	noScore := rec("Other", "25 - 45", 0, 0, 1)
	noScore.DecileScore = nil

	summaries := SummarizeByRace([]schema.Record{
		rec("Other", "25 - 45", 0, 6, 0),
		noScore,
	})
	require.Len(t, summaries, 1)

	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 6.0, summaries[0].MeanDecile, 1e-9)
	assert.InDelta(t, 0.5, summaries[0].RecidivismRate, 1e-9)
}

func TestSummarizeByRaceCountsUnclassified(t *testing.T) {
	summaries := SummarizeByRace([]schema.Record{
		rec("Hispanic", "25 - 45", 4, 5, 0),
		rec("Hispanic", "25 - 45", 300, 5, 0),
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Unclassified)
}

func TestSummarizeByRaceEmpty(t *testing.T) {
	assert.Empty(t, SummarizeByRace(nil))
}

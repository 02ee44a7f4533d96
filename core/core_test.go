package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/internal/contract"
	"riskboard/schema"
)

func TestFilterForConfigDefaultsToAllRaces(t *testing.T) {
	records := []schema.Record{
		rec("Caucasian", "25 - 45", 0, 3, 0),
		rec("Hispanic", "Less than 25", 2, 8, 1),
	}

	cfg := &contract.Config{Races: nil, AgeGroup: schema.AgeGroupAll}
	assert.Equal(t, records, FilterForConfig(cfg, records))
}

func TestFilterForConfigExplicitEmptySelection(t *testing.T) {
	records := []schema.Record{rec("Caucasian", "25 - 45", 0, 3, 0)}

	cfg := &contract.Config{Races: []string{}, AgeGroup: schema.AgeGroupAll}
	assert.Empty(t, FilterForConfig(cfg, records))
}

// TestPipelineIdempotent parses a table twice and runs every downstream
// transformation on both copies; all outputs must match exactly.
func TestPipelineIdempotent(t *testing.T) {
	table := testTable(
		testRow("alice", "Caucasian", "Female", "34", "25 - 45", "0", "3", "Petty Theft", "FL", "0"),
		testRow("bob", "African-American", "Male", "22", "Less than 25", "4", "8", "Burglary", "FL", "1"),
		testRow("carol", "Hispanic", "Female", "51", "Greater than 45", "12", "6", "Fraud", "FL", "1"),
	)

	first, err := ParseTable("test.csv", table)
	require.NoError(t, err)
	second, err := ParseTable("test.csv", table)
	require.NoError(t, err)
	require.Equal(t, first, second)

	cfg := &contract.Config{Races: []string{"Caucasian", "Hispanic"}, AgeGroup: schema.AgeGroupAll}
	firstFiltered := FilterForConfig(cfg, first)
	secondFiltered := FilterForConfig(cfg, second)
	require.Equal(t, firstFiltered, secondFiltered)

	assert.Equal(t, AggregateTrend(firstFiltered), AggregateTrend(secondFiltered))
	assert.Equal(t, ProjectScatter(firstFiltered), ProjectScatter(secondFiltered))
	assert.Equal(t, SummarizeByRace(firstFiltered), SummarizeByRace(secondFiltered))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/schema"
)

func TestErrorRateRows(t *testing.T) {
	rows := ErrorRateRows()
	require.Len(t, rows, 12)

	// The first half carries every false positive rate, the second half
	// every false negative rate, both in the same race order.
	for i := 0; i < 6; i++ {
		assert.Equal(t, schema.FalsePositiveRate, rows[i].Metric)
		assert.Equal(t, schema.FalseNegativeRate, rows[i+6].Metric)
		assert.Equal(t, rows[i].Race, rows[i+6].Race)
	}

	assert.Equal(t, "African-American", rows[0].Race)
	assert.InDelta(t, 7.5, rows[0].Percent, 1e-9)
	assert.InDelta(t, 31.5, rows[6].Percent, 1e-9)
}

func TestErrorRateRowsStable(t *testing.T) {
	assert.Equal(t, ErrorRateRows(), ErrorRateRows())
}

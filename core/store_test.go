package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/internal/contract"
	"riskboard/schema"
)

// testColumns is the canonical header used across core tests, deliberately
// in a different order than requiredColumns to prove lookups go by name.
var testColumns = []string{
	"name", "race", "sex", "age", "age_cat", "priors_count",
	"decile_score", "c_charge_desc", "state", "two_year_recid", "extra_col",
}

// testRow builds one raw row matching testColumns.
func testRow(name, race, sex, age, ageCat, priors, decile, charge, state, recid string) []string {
	return []string{name, race, sex, age, ageCat, priors, decile, charge, state, recid, "ignored"}
}

func testTable(rows ...[]string) *schema.RawTable {
	return &schema.RawTable{Columns: testColumns, Rows: rows}
}

func TestParseTable(t *testing.T) {
	table := testTable(
		testRow("alice", "Caucasian", "Female", "34", "25 - 45", "0", "3", "Petty Theft", "FL", "0"),
		testRow("bob", "African-American", "Male", "22", "Less than 25", "4", "8", "Burglary", "FL", "1"),
	)

	records, err := ParseTable("test.csv", table)
	require.NoError(t, err)
	require.Len(t, records, 2)

	alice := records[0]
	assert.Equal(t, "alice", alice.Name)
	assert.Equal(t, "Caucasian", alice.Race)
	assert.Equal(t, 34, *alice.Age)
	assert.Equal(t, "25 - 45", alice.AgeGroup)
	assert.Equal(t, 3, *alice.DecileScore)
	assert.Equal(t, "FL", alice.Jurisdiction)
	assert.Equal(t, schema.NoRecidivism, alice.RecidivismStatus)
	assert.Equal(t, schema.Bin0, alice.PriorsBin)

	bob := records[1]
	assert.Equal(t, schema.Recidivism, bob.RecidivismStatus)
	assert.Equal(t, schema.Bin3To5, bob.PriorsBin)
}

func TestParseTableMissingColumn(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"name", "race", "sex"},
		Rows:    nil,
	}

	_, err := ParseTable("test.csv", table)
	var loadErr *contract.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, contract.ErrMissingColumn)
}

func TestParseTableOptionalCells(t *testing.T) {
	table := testTable(
		testRow("carol", "Hispanic", "Female", "", "25 - 45", "1", "", "DUI", "FL", "0"),
	)

	records, err := ParseTable("test.csv", table)
	require.NoError(t, err)
	assert.Nil(t, records[0].Age)
	assert.Nil(t, records[0].DecileScore)
}

func TestParseTableRejectsBadRows(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		wantErr string
	}{
		{
			name:    "garbage priors count",
			row:     testRow("d", "Other", "Male", "30", "25 - 45", "many", "5", "x", "FL", "0"),
			wantErr: `column "priors_count"`,
		},
		{
			name:    "empty outcome",
			row:     testRow("d", "Other", "Male", "30", "25 - 45", "1", "5", "x", "FL", ""),
			wantErr: `column "two_year_recid": empty cell`,
		},
		{
			name:    "outcome outside binary domain",
			row:     testRow("d", "Other", "Male", "30", "25 - 45", "1", "5", "x", "FL", "2"),
			wantErr: "two_year_recid must be 0 or 1",
		},
		{
			name:    "decile outside 1-10",
			row:     testRow("d", "Other", "Male", "30", "25 - 45", "1", "11", "x", "FL", "0"),
			wantErr: "decile_score 11 out of range",
		},
		{
			name:    "ragged row",
			row:     []string{"d", "Other", "Male"},
			wantErr: "row has 3 fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable("test.csv", testTable(tt.row))
			var loadErr *contract.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.ErrorContains(t, err, "row 2", "errors must carry the 1-based file row number")
		})
	}
}

func TestParseTableUnclassifiedPriors(t *testing.T) {
	table := testTable(
		testRow("e", "Other", "Male", "30", "25 - 45", "150", "5", "x", "FL", "0"),
	)

	records, err := ParseTable("test.csv", table)
	require.NoError(t, err)
	assert.Equal(t, schema.BinUnclassified, records[0].PriorsBin)
}

func TestRecordStoreLoadFromSource(t *testing.T) {
	ctx := context.Background()

	mockSource := &contract.MockDatasetSource{}
	mockSource.On("Name").Return("mock.csv")
	mockSource.On("ReadAll", ctx).Return(testTable(
		testRow("alice", "Caucasian", "Female", "34", "25 - 45", "0", "3", "Petty Theft", "FL", "0"),
	), nil)

	records, err := NewRecordStore(mockSource).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	mockSource.AssertExpectations(t)
}

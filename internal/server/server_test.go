package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/internal/contract"
	"riskboard/schema"
)

const testCSV = `name,sex,age,age_cat,race,priors_count,decile_score,c_charge_desc,state,two_year_recid
alice,Female,34,25 - 45,Caucasian,0,3,Petty Theft,FL,0
bob,Male,22,Less than 25,African-American,4,8,Burglary,FL,1
carol,Female,51,Greater than 45,Hispanic,12,6,Fraud,FL,1
dave,Male,29,25 - 45,Caucasian,1,5,Assault,FL,0
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dataPath := filepath.Join(t.TempDir(), "compas.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(testCSV), 0o644))

	cfg := &contract.Config{
		DataPath:        dataPath,
		AgeGroup:        schema.AgeGroupAll,
		ResultLimit:     contract.DefaultResultLimit,
		Precision:       contract.DefaultPrecision,
		Output:          schema.TextOut,
		SnapshotBackend: schema.NoneBackend,
		RunsBackend:     schema.NoneBackend,
	}
	return NewServer(cfg, nil)
}

func doGet(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestTrendEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/trend")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []schema.LongSeriesPoint `json:"points"`
		Bins   []schema.AggregatedBin   `json:"bins"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Bins 0, 1-2, 3-5, 11-20 are populated, each contributing two points
	assert.Len(t, body.Bins, 4)
	assert.Len(t, body.Points, 8)
	assert.Zero(t, len(body.Points)%2)
}

func TestTrendEndpointWithRaceFilter(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/trend?races=Caucasian")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Bins []schema.AggregatedBin `json:"bins"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Only alice (bin 0) and dave (bin 1-2) remain
	require.Len(t, body.Bins, 2)
	assert.Equal(t, schema.Bin0, body.Bins[0].Bin)
	assert.Equal(t, schema.Bin1To2, body.Bins[1].Bin)
}

func TestTrendEndpointEmptySelection(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/trend?races=")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []schema.LongSeriesPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Points)
}

func TestScatterEndpointWithAgeGroupFilter(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/scatter?age_group=25+-+45")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []schema.ScatterPoint `json:"points"`
		Count  int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "alice", body.Points[0].Name)
	assert.Equal(t, "dave", body.Points[1].Name)
}

func TestScatterEndpointLimit(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/scatter?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []schema.ScatterPoint `json:"points"`
		Count  int                   `json:"count"`
		Total  int                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Points, 2)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 4, body.Total)
	assert.Equal(t, "alice", body.Points[0].Name)
	assert.Equal(t, "bob", body.Points[1].Name)
}

func TestErrorRatesEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/error-rates")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []schema.ErrorRateEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 12)
}

func TestSummaryEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []schema.RaceSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 3)
	assert.Equal(t, "African-American", summaries[0].Race)
	assert.Equal(t, "Caucasian", summaries[1].Race)
	assert.Equal(t, 2, summaries[1].Count)
}

func TestOptionsEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/options")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Races     []string `json:"races"`
		AgeGroups []string `json:"age_groups"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"African-American", "Caucasian", "Hispanic"}, body.Races)
	require.NotEmpty(t, body.AgeGroups)
	assert.Equal(t, schema.AgeGroupAll, body.AgeGroups[0])
}

func TestRunsEndpointWithoutStore(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/runs")

	require.Equal(t, http.StatusOK, rec.Code)
	var runs []schema.PipelineRunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Empty(t, runs)
}

func TestTrendEndpointMissingDataset(t *testing.T) {
	cfg := &contract.Config{
		DataPath:    filepath.Join(t.TempDir(), "missing.csv"),
		AgeGroup:    schema.AgeGroupAll,
		ResultLimit: contract.DefaultResultLimit,
	}
	s := NewServer(cfg, nil)

	rec := doGet(t, s, "/api/trend")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "load")
}

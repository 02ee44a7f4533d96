package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"riskboard/core"
	"riskboard/internal/contract"
	"riskboard/schema"
)

// writeJSON writes the payload as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// requestConfig clones the base config and applies the request's filter
// parameters: races as a comma list and age_group as a single band.
func (s *Server) requestConfig(r *http.Request) *contract.Config {
	cfg := s.cfg.Clone()

	query := r.URL.Query()
	if query.Has("races") {
		cfg.Races = contract.SplitCommaList(query.Get("races"))
		if cfg.Races == nil {
			// An explicit empty selection filters out everything
			cfg.Races = []string{}
		}
	}
	if ageGroup := query.Get("age_group"); ageGroup != "" {
		cfg.AgeGroup = ageGroup
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= contract.MaxResultLimit {
			cfg.ResultLimit = limit
		}
	}
	return cfg
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTrend serves the long-format series points plus the per-bin aggregates.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := s.requestConfig(r)

	records, err := core.LoadRecords(r.Context(), cfg, s.mgr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	filtered := core.FilterForConfig(cfg, records)
	core.RecordRun(s.mgr, "api:trend", cfg, start, len(records), len(filtered))

	writeJSON(w, http.StatusOK, map[string]any{
		"points": core.AggregateTrend(filtered),
		"bins":   core.AggregateBins(filtered),
	})
}

// handleScatter serves the plottable scatter points.
func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := s.requestConfig(r)

	records, err := core.LoadRecords(r.Context(), cfg, s.mgr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	filtered := core.FilterForConfig(cfg, records)
	points := core.ProjectScatter(filtered)
	total := len(points)
	if cfg.ResultLimit > 0 && total > cfg.ResultLimit {
		points = points[:cfg.ResultLimit]
	}
	core.RecordRun(s.mgr, "api:scatter", cfg, start, len(records), len(filtered))

	writeJSON(w, http.StatusOK, map[string]any{
		"points": points,
		"count":  len(points),
		"total":  total,
	})
}

// handleErrorRates serves the static per-race error-rate table. No dataset
// load happens here.
func (s *Server) handleErrorRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.ErrorRateRows())
}

// handleSummary serves the per-race summary statistics.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := s.requestConfig(r)

	records, err := core.LoadRecords(r.Context(), cfg, s.mgr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	filtered := core.FilterForConfig(cfg, records)
	core.RecordRun(s.mgr, "api:summary", cfg, start, len(records), len(filtered))

	writeJSON(w, http.StatusOK, core.SummarizeByRace(filtered))
}

// handleOptions serves the distinct filter options observed in the dataset,
// for populating selection widgets.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	cfg := s.cfg.Clone()

	records, err := core.LoadRecords(r.Context(), cfg, s.mgr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	ageGroups := append([]string{schema.AgeGroupAll}, core.AgeGroupOptions(records)...)
	writeJSON(w, http.StatusOK, map[string]any{
		"races":      core.RaceOptions(records),
		"age_groups": ageGroups,
	})
}

// handleRuns serves the most recent pipeline runs.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.mgr == nil || s.mgr.GetRunStore() == nil {
		writeJSON(w, http.StatusOK, []schema.PipelineRunRecord{})
		return
	}

	limit := s.cfg.ResultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= contract.MaxResultLimit {
			limit = parsed
		}
	}

	runs, err := s.mgr.GetRunStore().ListRuns(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []schema.PipelineRunRecord{}
	}
	writeJSON(w, http.StatusOK, runs)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"riskboard/core"
	"riskboard/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// requestConfig clones the base config and applies the shared filter arguments.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}
	if r := request.GetString("races", ""); r != "" {
		cfg.Races = contract.SplitCommaList(r)
	}
	if a := request.GetString("age_group", ""); a != "" {
		cfg.AgeGroup = a
	}
	return cfg
}

func (h *toolHandler) handleGetTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.requestConfig(request)

	records, err := core.LoadRecords(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	filtered := core.FilterForConfig(cfg, records)
	core.RecordRun(h.mgr, "mcp:trend", cfg, start, len(records), len(filtered))

	payload := map[string]any{
		"points": core.AggregateTrend(filtered),
		"bins":   core.AggregateBins(filtered),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScatter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.requestConfig(request)

	records, err := core.LoadRecords(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	filtered := core.FilterForConfig(cfg, records)
	points := core.ProjectScatter(filtered)
	if l := request.GetInt("limit", 0); l > 0 && len(points) > l {
		points = points[:l]
	}
	core.RecordRun(h.mgr, "mcp:scatter", cfg, start, len(records), len(filtered))

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.requestConfig(request)

	records, err := core.LoadRecords(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	filtered := core.FilterForConfig(cfg, records)
	core.RecordRun(h.mgr, "mcp:summary", cfg, start, len(records), len(filtered))

	jsonData, _ := json.MarshalIndent(core.SummarizeByRace(filtered), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetErrorRates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(core.ErrorRateRows(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

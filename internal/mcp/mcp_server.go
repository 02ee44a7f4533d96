// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"riskboard/internal/contract"
)

// NewMCPServer initializes and configures the riskboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Riskboard Data Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_trend ---
	s.AddTool(mcp.NewTool("get_trend",
		mcp.WithDescription("Aggregate COMPAS records by prior-conviction bins into trend series (normalized score and recidivism rate per bin)."),
		mcp.WithString("data_path", mcp.Description("Path to the COMPAS CSV dataset (defaults to the configured dataset).")),
		mcp.WithString("races", mcp.Description("Comma-separated race selection. Omit to include all observed races.")),
		mcp.WithString("age_group", mcp.Description("Age band to filter on (e.g. 'Less than 25'). Defaults to 'All'.")),
	), h.handleGetTrend)

	// --- 2. Tool: get_scatter ---
	s.AddTool(mcp.NewTool("get_scatter",
		mcp.WithDescription("Project filtered COMPAS records onto age-versus-decile-score scatter points."),
		mcp.WithString("data_path", mcp.Description("Path to the COMPAS CSV dataset.")),
		mcp.WithString("races", mcp.Description("Comma-separated race selection.")),
		mcp.WithString("age_group", mcp.Description("Age band to filter on.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of points returned.")),
	), h.handleGetScatter)

	// --- 3. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Compute per-race summary statistics (count, mean/median/stddev decile, recidivism rate) over the filtered records."),
		mcp.WithString("data_path", mcp.Description("Path to the COMPAS CSV dataset.")),
		mcp.WithString("races", mcp.Description("Comma-separated race selection.")),
		mcp.WithString("age_group", mcp.Description("Age band to filter on.")),
	), h.handleGetSummary)

	// --- 4. Tool: get_error_rates ---
	s.AddTool(mcp.NewTool("get_error_rates",
		mcp.WithDescription("Return the published per-race false positive and false negative rates. These are reference statistics, not derived from the dataset."),
	), h.handleGetErrorRates)

	return s
}

// StartMCPServer starts the riskboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

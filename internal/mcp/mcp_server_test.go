package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskboard/internal/contract"
	mcp_internal "riskboard/internal/mcp"
	"riskboard/schema"
)

const testCSV = `name,sex,age,age_cat,race,priors_count,decile_score,c_charge_desc,state,two_year_recid
alice,Female,34,25 - 45,Caucasian,0,3,Petty Theft,FL,0
bob,Male,22,Less than 25,African-American,4,8,Burglary,FL,1
`

func testBaseConfig(t *testing.T) *contract.Config {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "compas.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(testCSV), 0o644))
	return &contract.Config{
		DataPath:    dataPath,
		AgeGroup:    schema.AgeGroupAll,
		ResultLimit: contract.DefaultResultLimit,
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPServerTools(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(testBaseConfig(t), mgr)

	ctx := context.Background()

	t.Run("get_trend returns both series", func(t *testing.T) {
		tool := s.GetTool("get_trend")
		require.NotNil(t, tool, "Tool get_trend should exist")

		res, err := tool.Handler(ctx, callRequest("get_trend", map[string]any{}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, string(schema.ScoreSeries))
		assert.Contains(t, text, string(schema.RecidivismRateSeries))
	})

	t.Run("get_trend with race filter", func(t *testing.T) {
		tool := s.GetTool("get_trend")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("get_trend", map[string]any{
			"races": "Caucasian",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"prior_convictions": "0"`)
		assert.NotContains(t, text, `"prior_convictions": "3-5"`)
	})

	t.Run("get_scatter respects limit", func(t *testing.T) {
		tool := s.GetTool("get_scatter")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("get_scatter", map[string]any{
			"limit": 1.0,
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "alice")
		assert.NotContains(t, text, "bob")
	})

	t.Run("get_summary groups by race", func(t *testing.T) {
		tool := s.GetTool("get_summary")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("get_summary", map[string]any{}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "African-American")
		assert.Contains(t, text, "Caucasian")
	})

	t.Run("get_error_rates returns reference table", func(t *testing.T) {
		tool := s.GetTool("get_error_rates")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("get_error_rates", map[string]any{}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, string(schema.FalsePositiveRate))
		assert.Contains(t, text, "Native American")
	})

	t.Run("get_trend missing dataset reports tool error", func(t *testing.T) {
		missing := mcp_internal.NewMCPServer(&contract.Config{
			DataPath: filepath.Join(t.TempDir(), "missing.csv"),
			AgeGroup: schema.AgeGroupAll,
		}, mgr)

		tool := missing.GetTool("get_trend")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("get_trend", map[string]any{}))
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "load failed")
	})
}

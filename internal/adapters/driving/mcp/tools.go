package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the free-text query to resolve"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"the query prefix to autocomplete"`
}

// SearchOutput is the output schema for both tools.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput represents a single scored result.
type ResultOutput struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	URL      string  `json:"url"`
	Score    float64 `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search books, chapters, categories, and entities",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Autocomplete suggestions for a query prefix",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit < 0 {
		limit = 0
	}

	results, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{Limit: limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toOutput(results), nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Suggest(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toOutput(results), nil
}

func toOutput(results []domain.ScoredResult) SearchOutput {
	output := SearchOutput{
		Results: make([]ResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		item := results[i].Item
		output.Results[i] = ResultOutput{
			ID:       item.ID,
			Type:     string(item.Type),
			Title:    item.Title,
			Subtitle: item.Subtitle,
			URL:      item.URL,
			Score:    results[i].Score,
		}
	}
	return output
}

package tools

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// Web Tool Implementations
// ============================================================================

const webSearchNotConfigured = "Tavily API key not configured. Set TAVILY_API_KEY environment variable."

func (e *Executor) executeWebSearch(ctx context.Context, args map[string]interface{}) string {
	if !e.search.IsConfigured() {
		return errorJSON(webSearchNotConfigured)
	}

	query := stringArg(args, "query", "")
	if query == "" {
		return errorJSON("query is required")
	}

	maxResults := intArg(args, "max_results", 0)

	resp, err := e.search.Search(ctx, query, maxResults)
	if err != nil {
		return errorJSON("Web search failed: " + err.Error())
	}

	e.logger.Debug("Web search completed",
		zap.String("query", query),
		zap.Int("results", len(resp.Results)),
	)

	return marshalResult(resp)
}

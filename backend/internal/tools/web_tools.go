package tools

import (
	"repo-analyst/backend/internal/adapter"
)

// GetWebSearchTool returns the Tavily-backed web search tool. It is only
// registered when a Tavily API key is configured.
func GetWebSearchTool() adapter.Tool {
	return adapter.Tool{
		Type: "function",
		Function: adapter.FunctionDefinition{
			Name:        ToolWebSearch,
			Description: "Search the web for general information, news, and additional context about technologies, companies, or trends.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Search query string",
					},
					"max_results": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of results to return (max 5, default 5)",
					},
				},
				"required": []string{"query"},
			},
		},
	}
}

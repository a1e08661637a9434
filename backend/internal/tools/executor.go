package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"repo-analyst/backend/internal/adapter"
	"repo-analyst/backend/internal/github"
	"repo-analyst/backend/internal/websearch"
)

// Executor routes tool calls to their implementations. Every tool returns a
// JSON string; failures are embedded as {"error": "..."} rather than raised,
// so the reasoning runtime always receives parseable output.
type Executor struct {
	github *github.Client
	search *websearch.Client
	logger *zap.Logger
}

// NewExecutor creates a new tool executor
func NewExecutor(gh *github.Client, ws *websearch.Client, log *zap.Logger) *Executor {
	return &Executor{
		github: gh,
		search: ws,
		logger: log.Named("tools"),
	}
}

// WebSearchEnabled reports whether the web search tool can be registered
func (e *Executor) WebSearchEnabled() bool {
	return e.search.IsConfigured()
}

// Execute runs a tool call and returns its JSON output
func (e *Executor) Execute(ctx context.Context, call adapter.ToolCall) string {
	e.logger.Debug("Executing tool",
		zap.String("tool", call.Name),
	)

	switch call.Name {
	case ToolRepositoryInfo:
		return e.executeRepositoryInfo(ctx, call.Arguments)
	case ToolRepositoryLanguages:
		return e.executeRepositoryLanguages(ctx, call.Arguments)
	case ToolRepositoryContributors:
		return e.executeRepositoryContributors(ctx, call.Arguments)
	case ToolRepositoryIssues:
		return e.executeRepositoryIssues(ctx, call.Arguments)
	case ToolRepositoryPulls:
		return e.executeRepositoryPulls(ctx, call.Arguments)
	case ToolRepositoryReleases:
		return e.executeRepositoryReleases(ctx, call.Arguments)
	case ToolSearchRepositories:
		return e.executeSearchRepositories(ctx, call.Arguments)
	case ToolWebSearch:
		return e.executeWebSearch(ctx, call.Arguments)
	default:
		e.logger.Warn("Unknown tool", zap.String("tool", call.Name))
		return errorJSON(fmt.Sprintf("Unknown tool: %s", call.Name))
	}
}

// toolError is the uniform failure shape of every tool
type toolError struct {
	Error string `json:"error"`
}

// errorJSON encodes a failure message the way every tool reports errors
func errorJSON(msg string) string {
	return marshalResult(toolError{Error: msg})
}

// marshalResult encodes a tool result with stable 2-space indentation
func marshalResult(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Results are plain data structures; this is unreachable in practice
		return fmt.Sprintf("{\n  \"error\": %q\n}", "failed to encode result: "+err.Error())
	}
	return string(b)
}

// stringArg extracts a string argument, defaulting when absent or empty
func stringArg(args map[string]interface{}, key, defaultValue string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// intArg extracts an integer argument. Tool call arguments arrive as
// JSON-decoded float64 values.
func intArg(args map[string]interface{}, key string, defaultValue int) int {
	if v, ok := args[key].(float64); ok && int(v) > 0 {
		return int(v)
	}
	return defaultValue
}

// clampPageSize bounds a per_page value to the upstream maximum of 100
func clampPageSize(n int) int {
	if n > 100 {
		return 100
	}
	return n
}

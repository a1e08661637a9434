package tools

import (
	"repo-analyst/backend/internal/adapter"
)

// GetGitHubTools returns the seven GitHub data-fetch tools
func GetGitHubTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryInfo,
				Description: "Get basic information about a GitHub repository: description, language, stars, forks, license, topics, and timestamps.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner (username or organization)",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryLanguages,
				Description: "Get the programming languages used in a repository with byte counts and percentages, largest first.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryContributors,
				Description: "Get contributors to a repository with their contribution counts.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
						"per_page": map[string]interface{}{
							"type":        "integer",
							"description": "Number of contributors to fetch (max 100, default 30)",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryIssues,
				Description: "Get issues from a repository. Pull requests are excluded even though the upstream endpoint mixes them in.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
						"state": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"open", "closed", "all"},
							"description": "Issue state (default: open)",
						},
						"per_page": map[string]interface{}{
							"type":        "integer",
							"description": "Number of issues to fetch (max 100, default 30)",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryPulls,
				Description: "Get pull requests from a repository with author, base and head branches.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
						"state": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"open", "closed", "all"},
							"description": "Pull request state (default: open)",
						},
						"per_page": map[string]interface{}{
							"type":        "integer",
							"description": "Number of pull requests to fetch (max 100, default 30)",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolRepositoryReleases,
				Description: "Get releases from a repository. Release notes are truncated to 500 characters.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"owner": map[string]interface{}{
							"type":        "string",
							"description": "Repository owner",
						},
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository name",
						},
						"per_page": map[string]interface{}{
							"type":        "integer",
							"description": "Number of releases to fetch (max 100, default 10)",
						},
					},
					"required": []string{"owner", "repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolSearchRepositories,
				Description: "Search GitHub for repositories. Supports qualifiers like 'language:go' or 'org:microsoft' in the query.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "Search query",
						},
						"sort": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"stars", "forks", "help-wanted-issues", "updated"},
							"description": "Sort criteria (default: stars)",
						},
						"order": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"asc", "desc"},
							"description": "Sort order (default: desc)",
						},
						"per_page": map[string]interface{}{
							"type":        "integer",
							"description": "Number of results to fetch (max 100, default 10)",
						},
					},
					"required": []string{"query"},
				},
			},
		},
	}
}

package tools

import (
	"repo-analyst/backend/internal/adapter"
)

// Tool names - GitHub data-fetch tools
const (
	ToolRepositoryInfo         = "get_repository_info"
	ToolRepositoryLanguages    = "get_repository_languages"
	ToolRepositoryContributors = "get_repository_contributors"
	ToolRepositoryIssues       = "get_repository_issues"
	ToolRepositoryPulls        = "get_repository_pulls"
	ToolRepositoryReleases     = "get_repository_releases"
	ToolSearchRepositories     = "search_repositories"
)

// Tool names - Web tools
const (
	ToolWebSearch = "web_search"
)

// GetAllTools returns the fixed tool set registered with the reasoning
// runtime. The web search tool is appended only when a search provider is
// configured; the returned list never changes after startup.
func GetAllTools(webSearchEnabled bool) []adapter.Tool {
	all := GetGitHubTools()
	if webSearchEnabled {
		all = append(all, GetWebSearchTool())
	}
	return all
}

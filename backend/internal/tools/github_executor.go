package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"

	"repo-analyst/backend/internal/github"
)

// ============================================================================
// GitHub Tool Implementations
// ============================================================================

const (
	defaultPageSize        = 30
	defaultReleasePageSize = 10
	defaultSearchPageSize  = 10

	// releaseBodyLimit is the character cap on release notes
	releaseBodyLimit = 500
)

func (e *Executor) executeRepositoryInfo(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s", owner, repo), nil)
	if err != nil {
		return errorJSON(err.Error())
	}

	var r github.Repository
	if err := json.Unmarshal(raw, &r); err != nil {
		return errorJSON("failed to parse response")
	}

	return marshalResult(projectRepository(r))
}

func (e *Executor) executeRepositoryLanguages(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s/languages", owner, repo), nil)
	if err != nil {
		return errorJSON(err.Error())
	}

	var byteCounts map[string]int64
	if err := json.Unmarshal(raw, &byteCounts); err != nil {
		return errorJSON("failed to parse response")
	}

	var total int64
	for _, n := range byteCounts {
		total += n
	}

	stats := make([]LanguageStat, 0, len(byteCounts))
	for language, n := range byteCounts {
		var percentage float64
		if total > 0 {
			percentage = roundTwoDecimals(float64(n) / float64(total) * 100)
		}
		stats = append(stats, LanguageStat{
			Language:   language,
			Bytes:      n,
			Percentage: percentage,
		})
	}

	// Largest first; name as a tie-break keeps the output deterministic
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Language < stats[j].Language
	})

	return marshalResult(stats)
}

func (e *Executor) executeRepositoryContributors(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(clampPageSize(intArg(args, "per_page", defaultPageSize))))

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s/contributors", owner, repo), params)
	if err != nil {
		return errorJSON(err.Error())
	}

	var upstream []github.Contributor
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return errorJSON("failed to parse response")
	}

	contributors := make([]ContributorRecord, 0, len(upstream))
	for _, c := range upstream {
		contributors = append(contributors, ContributorRecord{
			Login:         c.Login,
			Contributions: c.Contributions,
			Type:          c.Type,
			ProfileURL:    c.HTMLURL,
		})
	}

	return marshalResult(contributors)
}

func (e *Executor) executeRepositoryIssues(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	params := url.Values{}
	params.Set("state", stringArg(args, "state", "open"))
	params.Set("per_page", strconv.Itoa(clampPageSize(intArg(args, "per_page", defaultPageSize))))

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s/issues", owner, repo), params)
	if err != nil {
		return errorJSON(err.Error())
	}

	var upstream []github.Issue
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return errorJSON("failed to parse response")
	}

	issues := make([]IssueRecord, 0, len(upstream))
	for _, issue := range upstream {
		// The issues endpoint co-mingles pull requests; skip them
		if issue.PullRequest != nil {
			continue
		}

		labels := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			labels = append(labels, l.Name)
		}
		assignees := make([]string, 0, len(issue.Assignees))
		for _, a := range issue.Assignees {
			assignees = append(assignees, a.Login)
		}

		issues = append(issues, IssueRecord{
			Number:    issue.Number,
			Title:     issue.Title,
			State:     issue.State,
			CreatedAt: issue.CreatedAt,
			UpdatedAt: issue.UpdatedAt,
			Labels:    labels,
			Assignees: assignees,
			Comments:  issue.Comments,
			Author:    loginOf(issue.User),
			URL:       issue.HTMLURL,
		})
	}

	return marshalResult(issues)
}

func (e *Executor) executeRepositoryPulls(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	params := url.Values{}
	params.Set("state", stringArg(args, "state", "open"))
	params.Set("per_page", strconv.Itoa(clampPageSize(intArg(args, "per_page", defaultPageSize))))

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s/pulls", owner, repo), params)
	if err != nil {
		return errorJSON(err.Error())
	}

	var upstream []github.PullRequest
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return errorJSON("failed to parse response")
	}

	pulls := make([]PullRecord, 0, len(upstream))
	for _, pr := range upstream {
		pulls = append(pulls, PullRecord{
			Number:         pr.Number,
			Title:          pr.Title,
			State:          pr.State,
			CreatedAt:      pr.CreatedAt,
			UpdatedAt:      pr.UpdatedAt,
			MergedAt:       pr.MergedAt,
			Author:         loginOf(pr.User),
			BaseBranch:     pr.Base.Ref,
			HeadBranch:     pr.Head.Ref,
			Additions:      pr.Additions,
			Deletions:      pr.Deletions,
			ChangedFiles:   pr.ChangedFiles,
			Comments:       pr.Comments,
			ReviewComments: pr.ReviewComments,
			URL:            pr.HTMLURL,
		})
	}

	return marshalResult(pulls)
}

func (e *Executor) executeRepositoryReleases(ctx context.Context, args map[string]interface{}) string {
	owner := stringArg(args, "owner", "")
	repo := stringArg(args, "repo", "")
	if owner == "" || repo == "" {
		return errorJSON("owner and repo are required")
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(clampPageSize(intArg(args, "per_page", defaultReleasePageSize))))

	raw, err := e.github.Get(ctx, fmt.Sprintf("repos/%s/%s/releases", owner, repo), params)
	if err != nil {
		return errorJSON(err.Error())
	}

	var upstream []github.Release
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return errorJSON("failed to parse response")
	}

	releases := make([]ReleaseRecord, 0, len(upstream))
	for _, rel := range upstream {
		releases = append(releases, ReleaseRecord{
			Name:        rel.Name,
			TagName:     rel.TagName,
			PublishedAt: rel.PublishedAt,
			CreatedAt:   rel.CreatedAt,
			Author:      loginOf(rel.Author),
			Prerelease:  rel.Prerelease,
			Draft:       rel.Draft,
			AssetsCount: len(rel.Assets),
			Body:        truncateBody(rel.Body, releaseBodyLimit),
			URL:         rel.HTMLURL,
		})
	}

	return marshalResult(releases)
}

func (e *Executor) executeSearchRepositories(ctx context.Context, args map[string]interface{}) string {
	query := stringArg(args, "query", "")
	if query == "" {
		return errorJSON("query is required")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", stringArg(args, "sort", "stars"))
	params.Set("order", stringArg(args, "order", "desc"))
	params.Set("per_page", strconv.Itoa(clampPageSize(intArg(args, "per_page", defaultSearchPageSize))))

	raw, err := e.github.Get(ctx, "search/repositories", params)
	if err != nil {
		return errorJSON(err.Error())
	}

	var upstream github.RepositorySearch
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return errorJSON("failed to parse response")
	}

	results := SearchResultsRecord{
		TotalCount:        upstream.TotalCount,
		IncompleteResults: upstream.IncompleteResults,
		Repositories:      make([]SearchRepositoryRecord, 0, len(upstream.Items)),
	}
	for _, item := range upstream.Items {
		results.Repositories = append(results.Repositories, SearchRepositoryRecord{
			Name:        item.Name,
			FullName:    item.FullName,
			Description: item.Description,
			Language:    item.Language,
			Stars:       item.StargazersCount,
			Forks:       item.ForksCount,
			OpenIssues:  item.OpenIssuesCount,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
			Topics:      topicsOf(item),
			License:     licenseNameOf(item),
			URL:         item.HTMLURL,
		})
	}

	return marshalResult(results)
}

// ============================================================================
// Projection helpers
// ============================================================================

func projectRepository(r github.Repository) RepositoryRecord {
	return RepositoryRecord{
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		Language:      r.Language,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		OpenIssues:    r.OpenIssuesCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Size:          r.Size,
		DefaultBranch: r.DefaultBranch,
		Topics:        topicsOf(r),
		License:       licenseNameOf(r),
		Homepage:      r.Homepage,
		CloneURL:      r.CloneURL,
		SSHURL:        r.SSHURL,
	}
}

func topicsOf(r github.Repository) []string {
	if r.Topics == nil {
		return []string{}
	}
	return r.Topics
}

func licenseNameOf(r github.Repository) *string {
	if r.License == nil {
		return nil
	}
	name := r.License.Name
	return &name
}

func loginOf(u *github.User) string {
	if u == nil {
		return ""
	}
	return u.Login
}

// truncateBody caps release notes at limit characters, marking the cut
func truncateBody(body string, limit int) string {
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit]) + "..."
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}

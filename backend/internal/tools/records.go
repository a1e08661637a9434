package tools

// Normalized records returned by the data-fetch tools. Each is a strict
// allow-listed projection of the upstream payload; no other upstream field
// is ever surfaced.

// RepositoryRecord is the projection of a single repository
type RepositoryRecord struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   *string  `json:"description"`
	Language      *string  `json:"language"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	OpenIssues    int      `json:"open_issues"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	Size          int      `json:"size"`
	DefaultBranch string   `json:"default_branch"`
	Topics        []string `json:"topics"`
	License       *string  `json:"license"`
	Homepage      *string  `json:"homepage"`
	CloneURL      string   `json:"clone_url"`
	SSHURL        string   `json:"ssh_url"`
}

// LanguageStat is one language's share of a repository. The list a tool
// returns is ordered by byte count, largest first.
type LanguageStat struct {
	Language   string  `json:"language"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// ContributorRecord is the projection of one contributor
type ContributorRecord struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
	ProfileURL    string `json:"profile_url"`
}

// IssueRecord is the projection of one issue
type IssueRecord struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
	Comments  int      `json:"comments"`
	Author    string   `json:"author"`
	URL       string   `json:"url"`
}

// PullRecord is the projection of one pull request
type PullRecord struct {
	Number         int     `json:"number"`
	Title          string  `json:"title"`
	State          string  `json:"state"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	MergedAt       *string `json:"merged_at"`
	Author         string  `json:"author"`
	BaseBranch     string  `json:"base_branch"`
	HeadBranch     string  `json:"head_branch"`
	Additions      int     `json:"additions"`
	Deletions      int     `json:"deletions"`
	ChangedFiles   int     `json:"changed_files"`
	Comments       int     `json:"comments"`
	ReviewComments int     `json:"review_comments"`
	URL            string  `json:"url"`
}

// ReleaseRecord is the projection of one release
type ReleaseRecord struct {
	Name        *string `json:"name"`
	TagName     string  `json:"tag_name"`
	PublishedAt string  `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
	Author      string  `json:"author"`
	Prerelease  bool    `json:"prerelease"`
	Draft       bool    `json:"draft"`
	AssetsCount int     `json:"assets_count"`
	Body        string  `json:"body"`
	URL         string  `json:"url"`
}

// SearchRepositoryRecord is the projection of one search result item
type SearchRepositoryRecord struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description *string  `json:"description"`
	Language    *string  `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	OpenIssues  int      `json:"open_issues"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
	License     *string  `json:"license"`
	URL         string   `json:"url"`
}

// SearchResultsRecord preserves the upstream result envelope around the
// projected items
type SearchResultsRecord struct {
	TotalCount        int                      `json:"total_count"`
	IncompleteResults bool                     `json:"incomplete_results"`
	Repositories      []SearchRepositoryRecord `json:"repositories"`
}

package github

// Upstream payload shapes, limited to the fields the tools project. Fields
// that the API reports as null are pointers so the distinction survives
// normalization.

// License is the nested license object on a repository
type License struct {
	Name string `json:"name"`
}

// User is the nested account object on issues, pulls and releases
type User struct {
	Login string `json:"login"`
}

// Repository is a repos/{owner}/{repo} payload or a search result item
type Repository struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	Size            int      `json:"size"`
	DefaultBranch   string   `json:"default_branch"`
	Topics          []string `json:"topics"`
	License         *License `json:"license"`
	Homepage        *string  `json:"homepage"`
	CloneURL        string   `json:"clone_url"`
	SSHURL          string   `json:"ssh_url"`
	HTMLURL         string   `json:"html_url"`
}

// Contributor is one entry of repos/{owner}/{repo}/contributors
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
	HTMLURL       string `json:"html_url"`
}

// Label is the nested label object on an issue
type Label struct {
	Name string `json:"name"`
}

// Issue is one entry of repos/{owner}/{repo}/issues. The endpoint co-mingles
// pull requests; those entries carry a non-null pull_request object.
type Issue struct {
	Number      int     `json:"number"`
	Title       string  `json:"title"`
	State       string  `json:"state"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Labels      []Label `json:"labels"`
	Assignees   []User  `json:"assignees"`
	Comments    int     `json:"comments"`
	User        *User   `json:"user"`
	HTMLURL     string  `json:"html_url"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

// Branch is the nested base/head object on a pull request
type Branch struct {
	Ref string `json:"ref"`
}

// PullRequest is one entry of repos/{owner}/{repo}/pulls
type PullRequest struct {
	Number         int     `json:"number"`
	Title          string  `json:"title"`
	State          string  `json:"state"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	MergedAt       *string `json:"merged_at"`
	User           *User   `json:"user"`
	Base           Branch  `json:"base"`
	Head           Branch  `json:"head"`
	Additions      int     `json:"additions"`
	Deletions      int     `json:"deletions"`
	ChangedFiles   int     `json:"changed_files"`
	Comments       int     `json:"comments"`
	ReviewComments int     `json:"review_comments"`
	HTMLURL        string  `json:"html_url"`
}

// ReleaseAsset is one downloadable artifact on a release
type ReleaseAsset struct {
	Name string `json:"name"`
}

// Release is one entry of repos/{owner}/{repo}/releases
type Release struct {
	Name        *string        `json:"name"`
	TagName     string         `json:"tag_name"`
	PublishedAt string         `json:"published_at"`
	CreatedAt   string         `json:"created_at"`
	Author      *User          `json:"author"`
	Prerelease  bool           `json:"prerelease"`
	Draft       bool           `json:"draft"`
	Assets      []ReleaseAsset `json:"assets"`
	Body        string         `json:"body"`
	HTMLURL     string         `json:"html_url"`
}

// RepositorySearch is a search/repositories payload
type RepositorySearch struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}

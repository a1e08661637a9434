package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"repo-analyst/backend/pkg/logger"
)

const (
	defaultBaseURL = "https://api.github.com/"
	acceptHeader   = "application/vnd.github.v3+json"
	userAgent      = "GitHub-Project-Analyst-Agent"
)

// Client is a minimal GitHub REST API client: one GET per call, no retries,
// no caching. Failures are captured and reported as error values so tool
// code can re-serialize them instead of raising.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a GitHub API client. The token is optional; without it
// requests go out unauthenticated and hit the public rate limits.
func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("github"),
	}
}

// SetBaseURL overrides the API base URL (used by tests)
func (c *Client) SetBaseURL(rawURL string) {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	c.baseURL = rawURL
}

// Authenticated reports whether requests carry an Authorization header
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Get issues a single GET request against the API and returns the raw JSON
// body. Transport failures and non-2xx statuses come back as errors whose
// message always starts with "API request failed".
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	apiURL := c.baseURL + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %v", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	c.logger.Debug("GitHub API request", zap.String("url", apiURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API request failed: HTTP %d for %s", resp.StatusCode, apiURL)
	}

	return body, nil
}

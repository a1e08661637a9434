package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"repo-analyst/backend/pkg/logger"
)

const (
	defaultEndpoint = "https://api.tavily.com/search"

	// MaxResults is the hard ceiling on results per search, regardless of
	// what the caller requests.
	MaxResults = 5

	searchDepth = "basic"
)

// Client talks to the Tavily search API. A client without an API key is
// valid but reports itself as not configured and refuses to search.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Tavily search client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("websearch"),
	}
}

// SetEndpoint overrides the search endpoint (used by tests)
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// IsConfigured reports whether a Tavily API key was supplied
func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type upstreamResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	PublishedDate string  `json:"published_date"`
	Score         float64 `json:"score"`
}

type upstreamResponse struct {
	Results []upstreamResult `json:"results"`
}

// Result is one normalized search hit
type Result struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	PublishedDate string  `json:"published_date"`
	Score         float64 `json:"score"`
}

// Response is the normalized search output: the query that was run plus
// its hits.
type Response struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Search runs a single basic-depth search. The result count is clamped to
// MaxResults before the request goes out.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (*Response, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("Tavily API key not configured")
	}

	if maxResults <= 0 || maxResults > MaxResults {
		maxResults = MaxResults
	}

	reqBody := searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: searchDepth,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Tavily search",
		zap.String("query", query),
		zap.Int("max_results", maxResults),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d from search API", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var upstream upstreamResponse
	if err := json.Unmarshal(body, &upstream); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	out := &Response{
		Query:   query,
		Results: make([]Result, 0, len(upstream.Results)),
	}
	for _, r := range upstream.Results {
		out.Results = append(out.Results, Result{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			PublishedDate: r.PublishedDate,
			Score:         r.Score,
		})
	}

	return out, nil
}

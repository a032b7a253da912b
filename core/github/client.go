package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Repository is the subset of GitHub repository metadata the mod manager uses.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    Owner  `json:"owner"`
}

// Owner is the account a repository belongs to.
type Owner struct {
	Login string `json:"login"`
}

// Release is one published release of a repository.
type Release struct {
	TagName string         `json:"tag_name"`
	Name    string         `json:"name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is one downloadable file attached to a release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// APIError is returned when the GitHub API answers with a non-success status.
// It carries the API's own message field ("Not Found" for missing
// repositories) verbatim.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Message is the API's error message.
	Message string `json:"message"`
	// DocumentationURL points at the API documentation for the failure.
	DocumentationURL string `json:"documentation_url"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("github: request failed with status %d", e.StatusCode)
}

// Client is a GitHub API client.
//
// Client is safe for concurrent use. All methods that perform I/O accept a
// context for cancellation and timeout control.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a new GitHub client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	var repository Repository
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), &repository); err != nil {
		return nil, err
	}
	return &repository, nil
}

// ListReleases fetches the published releases of a repository.
func (c *Client) ListReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	var releases []Release
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/releases", owner, repo), &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// get makes an HTTP GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("github: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("github: request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// The error body is informative but optional; the status alone is
		// enough to report a failure.
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr == nil {
			_ = json.Unmarshal(data, apiErr)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("github: failed to parse response from %s: %w", u, err)
	}
	return nil
}

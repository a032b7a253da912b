package modrinth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// ErrInvalidIDOrSlug is returned when an identifier cannot be a Modrinth
// project id or slug. The check runs client-side, so malformed identifiers
// fail without a network round trip.
var ErrInvalidIDOrSlug = errors.New("modrinth: invalid project id or slug")

// idOrSlugPattern is Modrinth's published shape for project ids and slugs.
var idOrSlugPattern = regexp.MustCompile("^[a-zA-Z0-9!@$()`.+,\"\\-']{3,64}$")

// Project is the subset of Modrinth project metadata the mod manager uses.
type Project struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// ProjectType is "mod", "modpack", "resourcepack" or "shader".
	ProjectType string `json:"project_type"`

	GameVersions []string `json:"game_versions"`
	Loaders      []string `json:"loaders"`
}

// StatusError is returned when the API answers with a non-success status.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// URL is the URL that was requested.
	URL string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("modrinth: request to %s failed with status %d", e.URL, e.StatusCode)
}

// Client is a Modrinth API client.
//
// Client is safe for concurrent use. All methods that perform I/O accept a
// context for cancellation and timeout control.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new Modrinth client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.modrinth.com/v2"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// GetProject fetches project metadata for the given project id or slug.
// Returns ErrInvalidIDOrSlug without contacting the API when the identifier
// cannot possibly name a project.
func (c *Client) GetProject(ctx context.Context, idOrSlug string) (*Project, error) {
	if !idOrSlugPattern.MatchString(idOrSlug) {
		return nil, ErrInvalidIDOrSlug
	}

	u := c.baseURL + "/project/" + url.PathEscape(idOrSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("modrinth: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("modrinth: request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: u}
	}

	var project Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, fmt.Errorf("modrinth: failed to parse response from %s: %w", u, err)
	}
	return &project, nil
}

package curseforge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClassIDMods is the CurseForge class id of the "Mods" content category.
// Projects with any other class (modpacks, resource packs, worlds) are not
// mods.
const ClassIDMods = 6

// Mod is the subset of CurseForge project metadata the mod manager uses.
type Mod struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	ClassID int    `json:"classId"`

	// AllowModDistribution is nil when the project owner has not restricted
	// distribution; false means third-party downloads are forbidden.
	AllowModDistribution *bool `json:"allowModDistribution"`

	Links ModLinks `json:"links"`
}

// ModLinks holds the project's external URLs.
type ModLinks struct {
	WebsiteURL string `json:"websiteUrl"`
}

// File is one uploaded file of a CurseForge project.
type File struct {
	ID          int32  `json:"id"`
	DisplayName string `json:"displayName"`
	FileName    string `json:"fileName"`

	// GameVersions mixes Minecraft versions and mod loader names,
	// e.g. ["1.21.1", "Fabric"].
	GameVersions []string `json:"gameVersions"`
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
	return fmt.Sprintf("curseforge: request to %s failed with status %d", e.URL, e.StatusCode)
}

// Client is a CurseForge API client.
//
// Client is safe for concurrent use. All methods that perform I/O accept a
// context for cancellation and timeout control.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new CurseForge client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.curseforge.com"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// GetMod fetches project metadata for the given project id.
func (c *Client) GetMod(ctx context.Context, modID int32) (*Mod, error) {
	var body struct {
		Data Mod `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/v1/mods/%d", modID), &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// GetModFiles fetches the uploaded files of the given project.
func (c *Client) GetModFiles(ctx context.Context, modID int32) ([]File, error) {
	var body struct {
		Data []File `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/files", modID), &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// get makes an HTTP GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("curseforge: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("curseforge: request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: u}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("curseforge: failed to parse response from %s: %w", u, err)
	}
	return nil
}

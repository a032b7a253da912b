package github

// Config holds configuration for the GitHub API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.github.com"`
	// Token is an optional personal access token; unauthenticated requests
	// are rate limited far more aggressively.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

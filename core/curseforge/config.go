package curseforge

// Config holds configuration for the CurseForge API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.curseforge.com"`
	// APIKey is the CurseForge API key sent in the x-api-key header.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

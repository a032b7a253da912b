package modrinth

// Config holds configuration for the Modrinth API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.modrinth.com/v2"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

package config

// Config holds runtime configuration for the CLI.
type Config struct {
	BaseURL     string
	SnapshotDir string
	HTTPTimeout Duration
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		SnapshotDir: envOrDefault(envSnapshotDir, defaultSnapshotDir),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Metrics:     loadMetrics(),
	}
}

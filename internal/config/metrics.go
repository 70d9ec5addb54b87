package config

// MetricsConfig controls telemetry export settings. Metrics are off by
// default for a short-lived CLI run.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "nhl-nationality-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

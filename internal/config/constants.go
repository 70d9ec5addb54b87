package config

import "time"

const (
	envBaseURL      = "NHL_API_BASE_URL"
	envSnapshotDir  = "NHL_SNAPSHOT_DIR"
	envHTTPTimeout  = "NHL_HTTP_TIMEOUT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultBaseURL     = "https://statsapi.web.nhl.com"
	defaultSnapshotDir = "."
	defaultHTTPTimeout = 10 * Duration(time.Second)
	defaultMetricsPort = "9090"
)

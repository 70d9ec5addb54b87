package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envBaseURL, envSnapshotDir, envHTTPTimeout,
		envMetricsOn, envMetricsPort, envOtelEndpoint, envOtelService, envOtelInsecure,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.BaseURL != "https://statsapi.web.nhl.com" {
		t.Fatalf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.SnapshotDir != "." {
		t.Fatalf("unexpected snapshot dir %q", cfg.SnapshotDir)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics must default to disabled")
	}
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics port %q", cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != "nhl-nationality-service" {
		t.Fatalf("unexpected service name %q", cfg.Metrics.ServiceName)
	}
	if !cfg.Metrics.OtlpInsecure {
		t.Fatal("OTLP transport must default to insecure")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(envBaseURL, "http://localhost:8080")
	t.Setenv(envSnapshotDir, "/var/cache/nhl")
	t.Setenv(envHTTPTimeout, "30s")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envMetricsPort, "2112")
	t.Setenv(envOtelEndpoint, "localhost:4318")

	cfg := Load()

	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.SnapshotDir != "/var/cache/nhl" {
		t.Fatalf("unexpected snapshot dir %q", cfg.SnapshotDir)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "2112" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Metrics.OtlpEndpoint != "localhost:4318" {
		t.Fatalf("unexpected OTLP endpoint %q", cfg.Metrics.OtlpEndpoint)
	}
}

func TestDurationEnvOrDefaultRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"garbage":  "soon",
		"negative": "-5s",
		"zero":     "0s",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(envHTTPTimeout, raw)
			if got := durationEnvOrDefault(envHTTPTimeout, time.Minute); got != time.Minute {
				t.Fatalf("expected default for %q, got %v", raw, got)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]struct {
		raw      string
		fallback bool
		want     bool
	}{
		"one":          {"1", false, true},
		"true":         {"TRUE", false, true},
		"yes":          {"yes", false, true},
		"zero":         {"0", true, false},
		"false":        {"False", true, false},
		"no":           {"no", true, false},
		"empty":        {"", true, true},
		"unrecognized": {"maybe", false, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(envMetricsOn, tc.raw)
			if got := boolEnvOrDefault(envMetricsOn, tc.fallback); got != tc.want {
				t.Fatalf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
			}
		})
	}
}

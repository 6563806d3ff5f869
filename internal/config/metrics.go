package config

import "strings"

const defaultMetricsEnabled = true

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	// METRICS_PORT may be given as ":9090".
	port := strings.TrimPrefix(envOrDefault(envMetricsPort, defaultMetricsPort), ":")
	if port == "" {
		port = defaultMetricsPort
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, defaultMetricsEnabled),
		Port:         port,
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

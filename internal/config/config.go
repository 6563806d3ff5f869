package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  ProviderConfig
	Cache     CacheConfig
	Warmer    WarmerConfig
	Engine    EngineConfig
	Metrics   MetricsConfig
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  loadProvider(),
		Cache:     loadCache(),
		Warmer:    loadWarmer(),
		Engine:    loadEngine(),
		Metrics:   loadMetrics(),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
	}
}

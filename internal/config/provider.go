package config

import (
	"strings"
	"time"
)

// ProviderConfig selects the data source and how it is wrapped.
type ProviderConfig struct {
	Name          string
	DatasetPath   string
	PokeAPI       PokeAPIConfig
	RetryAttempts int
	RetryBackoff  time.Duration
	LookupTimeout time.Duration
}

// PokeAPIConfig controls the remote PokeAPI client.
type PokeAPIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RateInterval time.Duration
}

func loadProvider() ProviderConfig {
	return ProviderConfig{
		Name:        strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		DatasetPath: envOrDefault(envDatasetPath, ""),
		PokeAPI: PokeAPIConfig{
			BaseURL:      envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
			Timeout:      durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
			RateInterval: durationEnvOrDefault(envPokeAPIInterval, defaultPokeAPIInterval),
		},
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		LookupTimeout: durationEnvOrDefault(envLookupTimeout, defaultLookupTimeout),
	}
}

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// CacheConfig selects where resolved species and moves are cached.
type CacheConfig struct {
	Backend  string
	Address  string
	Password string
	TTL      time.Duration
}

func loadCache() CacheConfig {
	backend := strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend))
	switch backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		backend = defaultCacheBackend
	}
	return CacheConfig{
		Backend:  backend,
		Address:  envOrDefault(envCacheAddress, ""),
		Password: envOrDefault(envCachePassword, ""),
		TTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}

// WarmerConfig controls the cache warm loop.
type WarmerConfig struct {
	Enabled   bool
	Interval  time.Duration
	Watchlist []string
}

func loadWarmer() WarmerConfig {
	return WarmerConfig{
		Enabled:   boolEnvOrDefault(envWarmerEnabled, defaultWarmerEnabled),
		Interval:  durationEnvOrDefault(envWarmerInterval, defaultWarmerInterval),
		Watchlist: listEnvOrDefault(envWarmerWatchlist, defaultWatchlist),
	}
}

// EngineConfig holds request defaults for the calculators.
type EngineConfig struct {
	RecommendSize  int
	RecommendLimit int
	DefaultLevel   int
	MovesetPath    string
}

func loadEngine() EngineConfig {
	level := intEnvOrDefault(envDefaultLevel, defaultLevel)
	if level > 100 {
		level = defaultLevel
	}
	return EngineConfig{
		RecommendSize:  intEnvOrDefault(envRecommendSize, defaultRecommendSize),
		RecommendLimit: intEnvOrDefault(envRecommendLimit, defaultRecommendLimit),
		DefaultLevel:   level,
		MovesetPath:    envOrDefault(envMovesetPath, ""),
	}
}

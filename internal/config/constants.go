package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envDatasetPath     = "DATASET_PATH"
	envPokeAPIBaseURL  = "POKEAPI_BASE_URL"
	envPokeAPITimeout  = "POKEAPI_TIMEOUT"
	envPokeAPIInterval = "POKEAPI_RATE_INTERVAL"
	envRetryAttempts   = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff    = "PROVIDER_RETRY_BACKOFF"
	envLookupTimeout   = "LOOKUP_TIMEOUT"
	envCacheBackend    = "CACHE_BACKEND"
	envCacheAddress    = "CACHE_ADDRESS"
	envCachePassword   = "CACHE_PASSWORD"
	envCacheTTL        = "CACHE_TTL"
	envWarmerEnabled   = "WARMER_ENABLED"
	envWarmerInterval  = "WARMER_INTERVAL"
	envWarmerWatchlist = "WARMER_WATCHLIST"
	envRecommendSize   = "RECOMMEND_SIZE"
	envRecommendLimit  = "RECOMMEND_LIMIT"
	envDefaultLevel    = "DEFAULT_LEVEL"
	envMovesetPath     = "MOVESET_PATH"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort            = "4000"
	defaultProvider        = "fixture"
	defaultPokeAPIBaseURL  = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout  = 10 * time.Second
	defaultPokeAPIInterval = 100 * time.Millisecond
	defaultRetryAttempts   = 3
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultLookupTimeout   = 5 * time.Second
	defaultCacheBackend    = CacheMemory
	defaultCacheTTL        = 24 * time.Hour
	defaultWarmerEnabled   = true
	defaultWarmerInterval  = 15 * time.Minute
	defaultRecommendSize   = 3
	defaultRecommendLimit  = 3
	defaultLevel           = 50
	defaultMetricsPort     = "9090"
	defaultServiceName     = "pokecalc-service"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// defaultWatchlist covers the species most requests are expected to name.
var defaultWatchlist = []string{
	"meowscarada", "skeledirge", "quaquaval",
	"ting-lu", "chien-pao", "koraidon",
	"miraidon", "calyrex-shadow", "flutter-mane",
}

package server

import (
	"context"
	"log/slog"

	"pokecalc-service/internal/config"
	"pokecalc-service/internal/providers"
	"pokecalc-service/internal/store"
)

// buildCache returns the configured lookup cache and a close func.
// A nil cache disables caching. An unreachable Redis falls back to memory.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (providers.Cache, func() error) {
	switch cfg.Backend {
	case config.CacheNone:
		return nil, nil
	case config.CacheRedis:
		rs, err := store.NewRedisStore(ctx, store.RedisConfig{
			Address:  cfg.Address,
			Password: cfg.Password,
			TTL:      cfg.TTL,
		})
		if err == nil {
			return rs, rs.Close
		}
		if logger != nil {
			logger.Warn("redis cache unavailable, falling back to memory", "error", err)
		}
	}
	return store.NewMemoryStore(cfg.TTL), nil
}

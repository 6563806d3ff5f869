package providers

import (
	"context"
	"log/slog"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/metrics"
)

// Cache stores resolved records keyed by normalized name.
type Cache interface {
	GetSpecies(ctx context.Context, key string) (pokemon.Species, bool, error)
	SetSpecies(ctx context.Context, key string, species pokemon.Species) error
	GetMove(ctx context.Context, key string) (pokemon.Move, bool, error)
	SetMove(ctx context.Context, key string, move pokemon.Move) error
}

// cachingProvider serves lookups from a Cache and fills it from the next provider.
// Cache failures are logged and treated as misses.
type cachingProvider struct {
	next     DataProvider
	cache    Cache
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewCachingProvider wraps next with a read-through cache. A nil cache returns next unchanged.
func NewCachingProvider(next DataProvider, cache Cache, recorder *metrics.Recorder, logger *slog.Logger) DataProvider {
	if cache == nil {
		return next
	}
	return &cachingProvider{next: next, cache: cache, recorder: recorder, logger: logger}
}

func (c *cachingProvider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	key := NormalizeName(name)
	sp, ok, err := c.cache.GetSpecies(ctx, key)
	if err != nil {
		logWithProvider(ctx, c.logger, slog.LevelWarn, "cache", "species cache read failed", slog.String(logging.FieldSpecies, key), "err", err)
	}
	c.recorder.RecordCacheLookup("species", ok)
	if ok {
		return sp, nil
	}

	sp, err = c.next.FetchSpecies(ctx, name)
	if err != nil {
		return pokemon.Species{}, err
	}
	if err := c.cache.SetSpecies(ctx, key, sp); err != nil {
		logWithProvider(ctx, c.logger, slog.LevelWarn, "cache", "species cache write failed", slog.String(logging.FieldSpecies, key), "err", err)
	}
	return sp, nil
}

func (c *cachingProvider) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	key := NormalizeName(name)
	mv, ok, err := c.cache.GetMove(ctx, key)
	if err != nil {
		logWithProvider(ctx, c.logger, slog.LevelWarn, "cache", "move cache read failed", slog.String(logging.FieldMove, key), "err", err)
	}
	c.recorder.RecordCacheLookup("moves", ok)
	if ok {
		return mv, nil
	}

	mv, err = c.next.FetchMove(ctx, name)
	if err != nil {
		return pokemon.Move{}, err
	}
	if err := c.cache.SetMove(ctx, key, mv); err != nil {
		logWithProvider(ctx, c.logger, slog.LevelWarn, "cache", "move cache write failed", slog.String(logging.FieldMove, key), "err", err)
	}
	return mv, nil
}

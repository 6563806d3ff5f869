package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pokecalc-service/internal/config"
	"pokecalc-service/internal/metrics"
	"pokecalc-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit, retry, cache).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// builtProvider is the wrapped provider plus the resources to release on shutdown.
type builtProvider struct {
	provider providers.DataProvider
	closers  []func() error
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(ctx context.Context, cfg config.Config) (builtProvider, error) {
	base, err := selectProvider(cfg.Provider, f.logger)
	if err != nil {
		return builtProvider{}, err
	}
	name := providerName(cfg.Provider.Name, base)
	var out builtProvider

	// Only the remote API has an upstream quota to respect.
	if name == providerPokeAPI && cfg.Provider.PokeAPI.RateInterval > 0 {
		base = providers.NewRateLimitedProvider(base, cfg.Provider.PokeAPI.RateInterval, f.logger)
		if c, ok := base.(interface{ Close() }); ok {
			out.closers = append(out.closers, func() error { c.Close(); return nil })
		}
	}
	if name == providerPokeAPI {
		idx, err := remoteNameIndex(cfg.Provider)
		if err != nil {
			return builtProvider{}, err
		}
		base = providers.NewAliasingProvider(base, idx)
	}
	wrapped := providers.NewRetryingProvider(base, f.logger, f.metrics, name, cfg.Provider.RetryAttempts, cfg.Provider.RetryBackoff)

	cache, closeCache := buildCache(ctx, cfg.Cache, f.logger)
	if closeCache != nil {
		out.closers = append(out.closers, closeCache)
	}
	if cache != nil {
		wrapped = providers.NewCachingProvider(wrapped, cache, f.metrics, f.logger)
	}
	out.provider = wrapped
	return out, nil
}

// providerName is the label used for a provider in metrics and logs.
// An unconfigured name falls back to the provider's Go type.
func providerName(raw string, provider providers.DataProvider) string {
	if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
		return raw
	}
	if provider == nil {
		return "provider"
	}
	return strings.ToLower(fmt.Sprintf("%T", provider))
}

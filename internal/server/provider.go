package server

import (
	"fmt"
	"log/slog"

	"pokecalc-service/internal/config"
	"pokecalc-service/internal/providers"
	"pokecalc-service/internal/providers/fixture"
	"pokecalc-service/internal/providers/pokeapi"
)

const (
	providerFixture = "fixture"
	providerPokeAPI = "pokeapi"
)

func selectProvider(cfg config.ProviderConfig, logger *slog.Logger) (providers.DataProvider, error) {
	switch cfg.Name {
	case providerFixture, "":
		return loadFixture(cfg.DatasetPath)
	case providerPokeAPI:
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL: cfg.PokeAPI.BaseURL,
			Timeout: cfg.PokeAPI.Timeout,
		}), nil
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Name))
		}
		return loadFixture(cfg.DatasetPath)
	}
}

func loadFixture(path string) (providers.DataProvider, error) {
	p, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// remoteNameIndex returns the dataset alias index used to translate display
// names before they reach a remote provider.
func remoteNameIndex(cfg config.ProviderConfig) (providers.NameIndex, error) {
	idx, err := fixture.Load(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("load alias index: %w", err)
	}
	return idx, nil
}

// Package pokeapi fetches species and moves from the public PokeAPI v2.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/providers"
)

// Config controls how the client reaches PokeAPI.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Client maps PokeAPI resources to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout, cfg.UserAgent),
		now:        time.Now,
	}
}

// FetchSpecies retrieves /pokemon/{slug}.
func (c *Client) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	var payload pokemonResponse
	if err := c.get(ctx, "species", "pokemon", name, &payload); err != nil {
		return pokemon.Species{}, err
	}
	sp, err := mapSpecies(payload)
	if err != nil {
		return pokemon.Species{}, malformed("species", name, err)
	}
	return sp, nil
}

// FetchMove retrieves /move/{slug}.
func (c *Client) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	var payload moveResponse
	if err := c.get(ctx, "move", "move", name, &payload); err != nil {
		return pokemon.Move{}, err
	}
	mv, err := mapMove(payload)
	if err != nil {
		return pokemon.Move{}, malformed("move", name, err)
	}
	return mv, nil
}

// malformed reports an upstream record the domain cannot represent. The cause is
// formatted rather than wrapped so it is not mistaken for a caller input error.
func malformed(kind, name string, cause error) error {
	return fmt.Errorf("%w: %s: %s %q: %v", providers.ErrProviderUnavailable, providerName, kind, name, cause)
}

func (c *Client) get(ctx context.Context, kind, resource, name string, out any) error {
	id := providers.Slug(name)
	if id == "" {
		return &providers.NotFoundError{Kind: kind, Name: name}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource+"/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.WrapUnavailable(fmt.Errorf("%s: %w", providerName, err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return &providers.NotFoundError{Kind: kind, Name: name}
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "pokeapi rate limited",
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s: unexpected status %d: %s", providers.ErrProviderUnavailable, providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode %s: %w", providers.ErrProviderUnavailable, providerName, resource, err)
	}
	return nil
}

package providers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"pokecalc-service/internal/domain/pokemon"
)

// maxConcurrentLookups bounds the fan-out for one request.
const maxConcurrentLookups = 6

// Resolution is the outcome of one roster lookup.
type Resolution struct {
	Name    string
	Species pokemon.Species
	Err     error
}

// ResolveRoster looks up every name concurrently and never fails as a whole:
// each slot carries its own error. Results keep the input order.
func ResolveRoster(ctx context.Context, p SpeciesProvider, names []string, timeout time.Duration) []Resolution {
	out := make([]Resolution, len(names))
	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)
	for i, name := range names {
		g.Go(func() error {
			sp, err := lookup(ctx, p, name, timeout)
			out[i] = Resolution{Name: name, Species: sp, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// FetchAll looks up every name concurrently and fails on the first error,
// cancelling the lookups still in flight.
func FetchAll(ctx context.Context, p SpeciesProvider, names []string, timeout time.Duration) ([]pokemon.Species, error) {
	out := make([]pokemon.Species, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, name := range names {
		g.Go(func() error {
			sp, err := lookup(gctx, p, name, timeout)
			if err != nil {
				return fmt.Errorf("species %q: %w", name, err)
			}
			out[i] = sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func lookup(ctx context.Context, p SpeciesProvider, name string, timeout time.Duration) (pokemon.Species, error) {
	if p == nil {
		return pokemon.Species{}, ErrProviderUnavailable
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	sp, err := p.FetchSpecies(ctx, name)
	if err != nil {
		return pokemon.Species{}, WrapUnavailable(err)
	}
	if err := sp.Validate(); err != nil {
		return pokemon.Species{}, err
	}
	return sp, nil
}

package providers

import (
	"context"

	"pokecalc-service/internal/domain/pokemon"
)

// NameIndex resolves display names and aliases to canonical identifiers.
type NameIndex interface {
	CanonicalSpecies(name string) (string, bool)
	CanonicalMove(name string) (string, bool)
	SpeciesNames() []string
	MoveNames() []string
}

type aliasingProvider struct {
	inner DataProvider
	index NameIndex
}

// NewAliasingProvider translates names through index before calling inner, so a
// remote provider can be asked for "venusaur" when the caller said "フシギバナ".
// Names the index does not know are passed through unchanged. Not-found answers
// without suggestions get candidates from the index.
func NewAliasingProvider(inner DataProvider, index NameIndex) DataProvider {
	if index == nil {
		return inner
	}
	return &aliasingProvider{inner: inner, index: index}
}

func (p *aliasingProvider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	query := name
	if canonical, ok := p.index.CanonicalSpecies(name); ok {
		query = canonical
	}
	sp, err := p.inner.FetchSpecies(ctx, query)
	if err != nil {
		return pokemon.Species{}, p.suggest(err, "species", name, p.index.SpeciesNames)
	}
	return sp, nil
}

func (p *aliasingProvider) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	query := name
	if canonical, ok := p.index.CanonicalMove(name); ok {
		query = canonical
	}
	mv, err := p.inner.FetchMove(ctx, query)
	if err != nil {
		return pokemon.Move{}, p.suggest(err, "move", name, p.index.MoveNames)
	}
	return mv, nil
}

func (p *aliasingProvider) suggest(err error, kind, name string, candidates func() []string) error {
	nf, ok := AsNotFoundError(err)
	if !ok || len(nf.Suggestions) > 0 {
		return err
	}
	return &NotFoundError{Kind: kind, Name: name, Suggestions: Suggest(name, candidates())}
}

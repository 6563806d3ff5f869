package providers

import (
	"context"
	"errors"
	"testing"

	"pokecalc-service/internal/domain/pokemon"
)

type recordingProvider struct {
	known   map[string]bool
	queries []string
	err     error
}

func (r *recordingProvider) FetchSpecies(_ context.Context, name string) (pokemon.Species, error) {
	r.queries = append(r.queries, name)
	if r.err != nil {
		return pokemon.Species{}, r.err
	}
	if !r.known[name] {
		return pokemon.Species{}, &NotFoundError{Kind: "species", Name: name}
	}
	return pokemon.Species{Name: name}, nil
}

func (r *recordingProvider) FetchMove(_ context.Context, name string) (pokemon.Move, error) {
	r.queries = append(r.queries, name)
	if !r.known[name] {
		return pokemon.Move{}, &NotFoundError{Kind: "move", Name: name}
	}
	return pokemon.Move{Name: name}, nil
}

type mapIndex struct {
	species map[string]string
	moves   map[string]string
}

func (m mapIndex) CanonicalSpecies(name string) (string, bool) {
	c, ok := m.species[NormalizeName(name)]
	return c, ok
}

func (m mapIndex) CanonicalMove(name string) (string, bool) {
	c, ok := m.moves[NormalizeName(name)]
	return c, ok
}

func (m mapIndex) SpeciesNames() []string { return []string{"venusaur", "pikachu"} }
func (m mapIndex) MoveNames() []string    { return []string{"earthquake"} }

var testIndex = mapIndex{
	species: map[string]string{"フシギバナ": "venusaur", "ピカチュウ": "pikachu"},
	moves:   map[string]string{"じしん": "earthquake"},
}

func TestAliasingProviderTranslatesAliases(t *testing.T) {
	inner := &recordingProvider{known: map[string]bool{"venusaur": true, "earthquake": true, "bulbasaur": true}}
	p := NewAliasingProvider(inner, testIndex)

	sp, err := p.FetchSpecies(context.Background(), "フシギバナ")
	if err != nil || sp.Name != "venusaur" {
		t.Fatalf("expected venusaur, got %+v %v", sp, err)
	}
	if _, err := p.FetchMove(context.Background(), "じしん"); err != nil {
		t.Fatalf("unexpected move error %v", err)
	}
	// names outside the index go straight through
	if _, err := p.FetchSpecies(context.Background(), "bulbasaur"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []string{"venusaur", "earthquake", "bulbasaur"}
	for i, q := range want {
		if inner.queries[i] != q {
			t.Fatalf("expected queries %v, got %v", want, inner.queries)
		}
	}
}

func TestAliasingProviderAddsSuggestions(t *testing.T) {
	p := NewAliasingProvider(&recordingProvider{}, testIndex)

	_, err := p.FetchSpecies(context.Background(), "pikachuu")
	nf, ok := AsNotFoundError(err)
	if !ok || nf.Name != "pikachuu" || len(nf.Suggestions) == 0 || nf.Suggestions[0] != "pikachu" {
		t.Fatalf("expected pikachu suggestion, got %v", err)
	}
}

func TestAliasingProviderPassesOtherErrors(t *testing.T) {
	p := NewAliasingProvider(&recordingProvider{err: ErrProviderUnavailable}, testIndex)
	if _, err := p.FetchSpecies(context.Background(), "フシギバナ"); !errors.Is(err, pokemon.ErrDataUnavailable) {
		t.Fatalf("expected data unavailable, got %v", err)
	}
	inner := &recordingProvider{}
	if NewAliasingProvider(inner, nil) != DataProvider(inner) {
		t.Fatal("expected nil index to return inner provider")
	}
}

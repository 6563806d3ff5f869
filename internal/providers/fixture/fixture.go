// Package fixture serves species and moves from a bundled JSON dataset.
// It backs local development and tests and can be replaced by a file at runtime.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/providers"
)

//go:embed dataset.json
var embeddedDataset []byte

type speciesRecord struct {
	Name      string             `json:"name"`
	Aliases   []string           `json:"aliases"`
	Types     []string           `json:"types"`
	Stats     pokemon.StatRecord `json:"stats"`
	Abilities []string           `json:"abilities"`
	TeraType  string             `json:"teraType"`
	Moves     []string           `json:"moves"`
}

type moveRecord struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Type     string   `json:"type"`
	Power    int      `json:"power"`
	Category string   `json:"category"`
}

type dataset struct {
	Species []speciesRecord `json:"species"`
	Moves   []moveRecord    `json:"moves"`
}

// Provider answers lookups from an in-memory dataset. It is safe for concurrent use.
type Provider struct {
	species      map[string]pokemon.Species
	speciesIndex map[string]string
	speciesNames []string
	moves        map[string]pokemon.Move
	moveIndex    map[string]string
	moveNames    []string
}

// New loads the embedded dataset.
func New() (*Provider, error) {
	return Parse(embeddedDataset)
}

// Load reads a dataset from path; an empty path loads the embedded dataset.
func Load(path string) (*Provider, error) {
	if strings.TrimSpace(path) == "" {
		return New()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse builds a provider from dataset JSON, rejecting incomplete species and unknown move references.
func Parse(data []byte) (*Provider, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	p := &Provider{
		species:      make(map[string]pokemon.Species, len(ds.Species)),
		speciesIndex: make(map[string]string),
		moves:        make(map[string]pokemon.Move, len(ds.Moves)),
		moveIndex:    make(map[string]string),
	}

	for _, rec := range ds.Moves {
		mv, err := rec.toMove()
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", rec.Name, err)
		}
		p.moves[mv.Name] = mv
		p.moveNames = append(p.moveNames, mv.Name)
		index(p.moveIndex, mv.Name, rec.Aliases)
	}

	for _, rec := range ds.Species {
		sp, err := rec.toSpecies(p.moves)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", rec.Name, err)
		}
		p.species[sp.Name] = sp
		p.speciesNames = append(p.speciesNames, sp.Name)
		index(p.speciesIndex, sp.Name, rec.Aliases)
	}

	sort.Strings(p.speciesNames)
	sort.Strings(p.moveNames)
	return p, nil
}

func index(idx map[string]string, name string, aliases []string) {
	for _, key := range append([]string{name}, aliases...) {
		for _, k := range []string{providers.NormalizeName(key), providers.Slug(key)} {
			if k != "" {
				idx[k] = name
			}
		}
	}
}

func resolve(idx map[string]string, name string) (string, bool) {
	if canonical, ok := idx[providers.NormalizeName(name)]; ok {
		return canonical, true
	}
	canonical, ok := idx[providers.Slug(name)]
	return canonical, ok
}

// FetchSpecies resolves a species by name, alias or slug.
func (p *Provider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	if err := ctx.Err(); err != nil {
		return pokemon.Species{}, err
	}
	canonical, ok := resolve(p.speciesIndex, name)
	if !ok {
		return pokemon.Species{}, &providers.NotFoundError{
			Kind:        "species",
			Name:        name,
			Suggestions: providers.Suggest(name, p.speciesNames),
		}
	}
	return cloneSpecies(p.species[canonical]), nil
}

// FetchMove resolves a move by name or alias.
func (p *Provider) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	if err := ctx.Err(); err != nil {
		return pokemon.Move{}, err
	}
	canonical, ok := resolve(p.moveIndex, name)
	if !ok {
		return pokemon.Move{}, &providers.NotFoundError{
			Kind:        "move",
			Name:        name,
			Suggestions: providers.Suggest(name, p.moveNames),
		}
	}
	return p.moves[canonical], nil
}

// SpeciesNames lists canonical species names in sorted order.
func (p *Provider) SpeciesNames() []string {
	return append([]string(nil), p.speciesNames...)
}

// MoveNames lists canonical move names in sorted order.
func (p *Provider) MoveNames() []string {
	return append([]string(nil), p.moveNames...)
}

// CanonicalSpecies maps a name or alias (e.g. "フシギバナ") to the dataset's species name.
func (p *Provider) CanonicalSpecies(name string) (string, bool) {
	return resolve(p.speciesIndex, name)
}

// CanonicalMove maps a move name or alias to the dataset's move name.
func (p *Provider) CanonicalMove(name string) (string, bool) {
	return resolve(p.moveIndex, name)
}

func (r moveRecord) toMove() (pokemon.Move, error) {
	t, err := pokemon.ParseType(r.Type)
	if err != nil {
		return pokemon.Move{}, err
	}
	category := pokemon.Category(r.Category).Normalize()
	switch category {
	case pokemon.Physical, pokemon.Special, pokemon.Status:
	default:
		return pokemon.Move{}, fmt.Errorf("%w: %q", pokemon.ErrInvalidMoveCategory, r.Category)
	}
	return pokemon.Move{
		Name:     providers.Slug(r.Name),
		Type:     t,
		Power:    r.Power,
		Category: category,
	}, nil
}

func (r speciesRecord) toSpecies(moves map[string]pokemon.Move) (pokemon.Species, error) {
	types, err := pokemon.ParseTypes(r.Types)
	if err != nil {
		return pokemon.Species{}, err
	}
	stats, err := r.Stats.Resolve()
	if err != nil {
		return pokemon.Species{}, err
	}
	sp := pokemon.Species{
		Name:      providers.Slug(r.Name),
		Types:     types,
		Stats:     stats,
		Abilities: r.Abilities,
	}
	if r.TeraType != "" {
		if sp.TeraType, err = pokemon.ParseType(r.TeraType); err != nil {
			return pokemon.Species{}, err
		}
	}
	for _, name := range r.Moves {
		mv, ok := moves[providers.Slug(name)]
		if !ok {
			return pokemon.Species{}, fmt.Errorf("unknown move %q", name)
		}
		sp.MovePool = append(sp.MovePool, mv)
	}
	if err := sp.Validate(); err != nil {
		return pokemon.Species{}, err
	}
	return sp, nil
}

func cloneSpecies(s pokemon.Species) pokemon.Species {
	s.Types = append([]pokemon.Type(nil), s.Types...)
	s.Abilities = append([]string(nil), s.Abilities...)
	s.MovePool = append([]pokemon.Move(nil), s.MovePool...)
	return s
}

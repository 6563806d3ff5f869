package simulate

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pokecalc-service/internal/domain/pokemon"
)

//go:embed moveset.yaml
var defaultMoveset []byte

const defaultSTABPower = 90

// ErrInvalidMoveset reports a moveset table that could not be used.
var ErrInvalidMoveset = errors.New("invalid moveset table")

// CoverageMove is one non-STAB move offered to every species of a category.
type CoverageMove struct {
	Name  string       `yaml:"name"`
	Type  pokemon.Type `yaml:"type"`
	Power int          `yaml:"power"`
}

// Moveset assigns assumed moves to species that carry no move pool.
type Moveset struct {
	STABPower int            `yaml:"stab_power"`
	Physical  []CoverageMove `yaml:"physical"`
	Special   []CoverageMove `yaml:"special"`
}

// DefaultMoveset returns the embedded table.
func DefaultMoveset() (Moveset, error) {
	return ParseMoveset(defaultMoveset)
}

// LoadMoveset reads a YAML table from path. An empty path returns the embedded table.
func LoadMoveset(path string) (Moveset, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultMoveset()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Moveset{}, fmt.Errorf("read moveset: %w", err)
	}
	return ParseMoveset(data)
}

// ParseMoveset decodes and validates a YAML table.
func ParseMoveset(data []byte) (Moveset, error) {
	var m Moveset
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Moveset{}, fmt.Errorf("%w: %v", ErrInvalidMoveset, err)
	}
	if m.STABPower <= 0 {
		m.STABPower = defaultSTABPower
	}
	for _, list := range [][]CoverageMove{m.Physical, m.Special} {
		for _, mv := range list {
			if mv.Name == "" || !mv.Type.Valid() || mv.Power <= 0 {
				return Moveset{}, fmt.Errorf("%w: bad coverage move %+v", ErrInvalidMoveset, mv)
			}
		}
	}
	return m, nil
}

// MovesFor returns the damaging moves a species is assumed to use.
// A species' own damaging moves take precedence over the table.
func (m Moveset) MovesFor(s pokemon.Species) []pokemon.Move {
	var pool []pokemon.Move
	for _, mv := range s.MovePool {
		if !mv.IsStatus() {
			pool = append(pool, mv)
		}
	}
	if len(pool) > 0 {
		return pool
	}

	category, coverage := pokemon.Special, m.Special
	if s.Stats.Attack > s.Stats.SpecialAttack {
		category, coverage = pokemon.Physical, m.Physical
	}
	moves := make([]pokemon.Move, 0, len(s.Types)+len(coverage))
	for _, t := range s.Types {
		moves = append(moves, pokemon.Move{
			Name:     t.String() + "-stab",
			Type:     t,
			Power:    m.STABPower,
			Category: category,
		})
	}
	for _, c := range coverage {
		moves = append(moves, pokemon.Move{Name: c.Name, Type: c.Type, Power: c.Power, Category: category})
	}
	return moves
}

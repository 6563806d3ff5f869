package battle

import (
	"errors"
	"fmt"

	"pokecalc-service/internal/domain/pokemon"
)

// ErrInvalidRequest reports request fields the engine cannot accept.
var ErrInvalidRequest = errors.New("invalid request")

const maxLevel = 100

// SpreadInput is a per-stat IV or EV allocation where omitted stats take a default.
type SpreadInput struct {
	HP             *int `json:"hp,omitempty"`
	Attack         *int `json:"attack,omitempty"`
	Defense        *int `json:"defense,omitempty"`
	SpecialAttack  *int `json:"specialAttack,omitempty"`
	SpecialDefense *int `json:"specialDefense,omitempty"`
	Speed          *int `json:"speed,omitempty"`
}

func (s *SpreadInput) resolve(def int) pokemon.StatSpread {
	out := pokemon.UniformSpread(def)
	if s == nil {
		return out
	}
	pick := func(v *int, dst *int) {
		if v != nil {
			*dst = *v
		}
	}
	pick(s.HP, &out.HP)
	pick(s.Attack, &out.Attack)
	pick(s.Defense, &out.Defense)
	pick(s.SpecialAttack, &out.SpecialAttack)
	pick(s.SpecialDefense, &out.SpecialDefense)
	pick(s.Speed, &out.Speed)
	return out
}

// CombatantInput names a species and its training. Omitted IVs are 31, EVs 0.
// A named nature wins over explicit modifiers.
type CombatantInput struct {
	Species         string          `json:"species"`
	Level           int             `json:"level,omitempty"`
	IVs             *SpreadInput    `json:"ivs,omitempty"`
	EVs             *SpreadInput    `json:"evs,omitempty"`
	Nature          string          `json:"nature,omitempty"`
	NatureModifiers *pokemon.Nature `json:"natureModifiers,omitempty"`
	TeraType        string          `json:"teraType,omitempty"`
}

// MoveInput is either a move name to look up or an inline move when Type is set.
type MoveInput struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Power    int    `json:"power,omitempty"`
	Category string `json:"category,omitempty"`
}

func (m MoveInput) inline() bool {
	return m.Type != ""
}

func (m MoveInput) toMove() (pokemon.Move, error) {
	t, err := pokemon.ParseType(m.Type)
	if err != nil {
		return pokemon.Move{}, err
	}
	if m.Power < 0 {
		return pokemon.Move{}, fmt.Errorf("%w: negative move power %d", ErrInvalidRequest, m.Power)
	}
	name := m.Name
	if name == "" {
		name = "custom"
	}
	return pokemon.Move{Name: name, Type: t, Power: m.Power, Category: pokemon.Category(m.Category)}, nil
}

// DamageRequest asks for one attack's damage.
type DamageRequest struct {
	Attacker CombatantInput `json:"attacker"`
	Defender CombatantInput `json:"defender"`
	Move     MoveInput      `json:"move"`
}

// RosterRequest carries two rosters of species names.
// Size and Limit only apply to recommendations.
type RosterRequest struct {
	Mine  []string `json:"mine"`
	Enemy []string `json:"enemy"`
	Size  int      `json:"size,omitempty"`
	Limit int      `json:"limit,omitempty"`
}

// SimulateRequest pits two combatants against each other.
type SimulateRequest struct {
	First  CombatantInput `json:"first"`
	Second CombatantInput `json:"second"`
}

func (in CombatantInput) combatant(species pokemon.Species, defaultLevel int) (pokemon.Combatant, error) {
	c := pokemon.Combatant{
		Species: species,
		IVs:     in.IVs.resolve(pokemon.MaxIV),
		EVs:     in.EVs.resolve(0),
		Level:   in.Level,
	}
	switch {
	case in.Level < 0 || in.Level > maxLevel:
		return pokemon.Combatant{}, fmt.Errorf("%w: level %d outside 1..%d", ErrInvalidRequest, in.Level, maxLevel)
	case in.Level == 0:
		c.Level = defaultLevel
	}

	switch {
	case in.Nature != "":
		n, err := pokemon.ParseNature(in.Nature)
		if err != nil {
			return pokemon.Combatant{}, err
		}
		c.Nature = n
	case in.NatureModifiers != nil:
		if err := in.NatureModifiers.Validate(); err != nil {
			return pokemon.Combatant{}, err
		}
		c.Nature = *in.NatureModifiers
	}

	if in.TeraType != "" {
		t, err := pokemon.ParseType(in.TeraType)
		if err != nil {
			return pokemon.Combatant{}, err
		}
		c.Tera = t
	}
	return c, nil
}

package pokemon

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLevel is used when a combatant does not specify one.
const DefaultLevel = 50

// MaxIV is the highest individual value.
const MaxIV = 31

// Nature holds per-stat multipliers. A zero field means neutral (1.0). HP is never affected.
type Nature struct {
	Attack         float64 `json:"attack,omitempty"`
	Defense        float64 `json:"defense,omitempty"`
	SpecialAttack  float64 `json:"specialAttack,omitempty"`
	SpecialDefense float64 `json:"specialDefense,omitempty"`
	Speed          float64 `json:"speed,omitempty"`
}

// Multiplier returns the effective multiplier for s.
func (n Nature) Multiplier(s Stat) float64 {
	var v float64
	switch s {
	case Attack:
		v = n.Attack
	case Defense:
		v = n.Defense
	case SpecialAttack:
		v = n.SpecialAttack
	case SpecialDefense:
		v = n.SpecialDefense
	case Speed:
		v = n.Speed
	}
	if v == 0 {
		return 1.0
	}
	return v
}

// Validate ensures every set multiplier is 0.9, 1.0 or 1.1.
func (n Nature) Validate() error {
	for _, v := range []float64{n.Attack, n.Defense, n.SpecialAttack, n.SpecialDefense, n.Speed} {
		switch v {
		case 0, 0.9, 1.0, 1.1:
		default:
			return fmt.Errorf("%w: multiplier %v", ErrInvalidNature, v)
		}
	}
	return nil
}

func natureOf(up, down Stat) Nature {
	var n Nature
	if up == down {
		return n
	}
	set := func(s Stat, v float64) {
		switch s {
		case Attack:
			n.Attack = v
		case Defense:
			n.Defense = v
		case SpecialAttack:
			n.SpecialAttack = v
		case SpecialDefense:
			n.SpecialDefense = v
		case Speed:
			n.Speed = v
		}
	}
	set(up, 1.1)
	set(down, 0.9)
	return n
}

var namedNatures = map[string]Nature{
	"hardy":   natureOf(Attack, Attack),
	"lonely":  natureOf(Attack, Defense),
	"brave":   natureOf(Attack, Speed),
	"adamant": natureOf(Attack, SpecialAttack),
	"naughty": natureOf(Attack, SpecialDefense),
	"bold":    natureOf(Defense, Attack),
	"docile":  natureOf(Defense, Defense),
	"relaxed": natureOf(Defense, Speed),
	"impish":  natureOf(Defense, SpecialAttack),
	"lax":     natureOf(Defense, SpecialDefense),
	"timid":   natureOf(Speed, Attack),
	"hasty":   natureOf(Speed, Defense),
	"serious": natureOf(Speed, Speed),
	"jolly":   natureOf(Speed, SpecialAttack),
	"naive":   natureOf(Speed, SpecialDefense),
	"modest":  natureOf(SpecialAttack, Attack),
	"mild":    natureOf(SpecialAttack, Defense),
	"quiet":   natureOf(SpecialAttack, Speed),
	"bashful": natureOf(SpecialAttack, SpecialAttack),
	"rash":    natureOf(SpecialAttack, SpecialDefense),
	"calm":    natureOf(SpecialDefense, Attack),
	"gentle":  natureOf(SpecialDefense, Defense),
	"sassy":   natureOf(SpecialDefense, Speed),
	"careful": natureOf(SpecialDefense, SpecialAttack),
	"quirky":  natureOf(SpecialDefense, SpecialDefense),
}

// ParseNature resolves one of the 25 named natures.
func ParseNature(name string) (Nature, error) {
	n, ok := namedNatures[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Nature{}, fmt.Errorf("%w: %q", ErrInvalidNature, name)
	}
	return n, nil
}

// NatureNames lists the named natures alphabetically.
func NatureNames() []string {
	names := make([]string, 0, len(namedNatures))
	for n := range namedNatures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Combatant is a species plus its training configuration for one calculation.
type Combatant struct {
	Species Species    `json:"species"`
	IVs     StatSpread `json:"ivs"`
	EVs     StatSpread `json:"evs"`
	Level   int        `json:"level"`
	Nature  Nature     `json:"nature"`
	// Tera is the active tera type; Unknown when not terastallized.
	Tera Type `json:"tera,omitempty"`
}

// NewCombatant returns a level 50 combatant with perfect IVs, no EVs and a neutral nature.
func NewCombatant(species Species) Combatant {
	return Combatant{
		Species: species,
		IVs:     UniformSpread(MaxIV),
		Level:   DefaultLevel,
	}
}

// EffectiveLevel returns the level, defaulting to 50.
func (c Combatant) EffectiveLevel() int {
	if c.Level <= 0 {
		return DefaultLevel
	}
	return c.Level
}

// Validate checks the underlying species record.
func (c Combatant) Validate() error {
	return c.Species.Validate()
}

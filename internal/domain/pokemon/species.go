package pokemon

import (
	"fmt"
	"strings"
)

// Stat identifies one of the six battle stats.
type Stat int

const (
	HP Stat = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

var statNames = [...]string{"hp", "attack", "defense", "specialAttack", "specialDefense", "speed"}

func (s Stat) String() string {
	if s >= HP && s <= Speed {
		return statNames[s]
	}
	return fmt.Sprintf("stat(%d)", int(s))
}

// BaseStats holds the six species base stats.
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// Get returns the value for the given stat.
func (b BaseStats) Get(s Stat) int {
	switch s {
	case HP:
		return b.HP
	case Attack:
		return b.Attack
	case Defense:
		return b.Defense
	case SpecialAttack:
		return b.SpecialAttack
	case SpecialDefense:
		return b.SpecialDefense
	case Speed:
		return b.Speed
	}
	return 0
}

// IsZero reports whether no stat has been set.
func (b BaseStats) IsZero() bool {
	return b == BaseStats{}
}

// StatSpread is a per-stat IV or EV allocation. It shares the BaseStats shape.
type StatSpread = BaseStats

// UniformSpread returns a spread with every stat set to v.
func UniformSpread(v int) StatSpread {
	return StatSpread{HP: v, Attack: v, Defense: v, SpecialAttack: v, SpecialDefense: v, Speed: v}
}

// StatRecord is the raw stat block supplied by a data provider, where any stat may be absent.
type StatRecord struct {
	HP             *int `json:"hp"`
	Attack         *int `json:"attack"`
	Defense        *int `json:"defense"`
	SpecialAttack  *int `json:"specialAttack"`
	SpecialDefense *int `json:"specialDefense"`
	Speed          *int `json:"speed"`
}

// Resolve converts the record into BaseStats, failing when a stat is missing.
func (r StatRecord) Resolve() (BaseStats, error) {
	fields := []*int{r.HP, r.Attack, r.Defense, r.SpecialAttack, r.SpecialDefense, r.Speed}
	var missing []string
	for i, f := range fields {
		if f == nil {
			missing = append(missing, Stat(i).String())
		}
	}
	if len(missing) > 0 {
		return BaseStats{}, fmt.Errorf("%w: missing %s", ErrIncompleteCombatant, strings.Join(missing, ", "))
	}
	return BaseStats{
		HP:             *r.HP,
		Attack:         *r.Attack,
		Defense:        *r.Defense,
		SpecialAttack:  *r.SpecialAttack,
		SpecialDefense: *r.SpecialDefense,
		Speed:          *r.Speed,
	}, nil
}

// Species is immutable reference data for one species or form.
type Species struct {
	Name      string    `json:"name"`
	Types     []Type    `json:"types"`
	Stats     BaseStats `json:"stats"`
	Abilities []string  `json:"abilities,omitempty"`
	TeraType  Type      `json:"teraType,omitempty"`
	MovePool  []Move    `json:"movePool,omitempty"`
}

// Validate checks the species carries the data the engine needs.
func (s Species) Validate() error {
	if len(s.Types) == 0 || len(s.Types) > 2 {
		return fmt.Errorf("%w: %s has %d types", ErrIncompleteCombatant, s.label(), len(s.Types))
	}
	for _, t := range s.Types {
		if !t.Valid() {
			return fmt.Errorf("%w: %s has an unknown type", ErrIncompleteCombatant, s.label())
		}
	}
	if s.Stats.IsZero() {
		return fmt.Errorf("%w: %s has no base stats", ErrIncompleteCombatant, s.label())
	}
	return nil
}

func (s Species) label() string {
	if s.Name == "" {
		return "species"
	}
	return s.Name
}

// Category selects which offensive/defensive stat pair a move uses.
type Category string

const (
	Physical Category = "physical"
	Special  Category = "special"
	Status   Category = "status"
)

// Normalize lower-cases and trims the category.
func (c Category) Normalize() Category {
	return Category(strings.ToLower(strings.TrimSpace(string(c))))
}

// Move is a single attack. Power 0 marks a status move.
type Move struct {
	Name     string   `json:"name"`
	Type     Type     `json:"type"`
	Power    int      `json:"power"`
	Category Category `json:"category"`
}

// IsStatus reports whether the move deals no direct damage.
func (m Move) IsStatus() bool {
	return m.Power <= 0
}

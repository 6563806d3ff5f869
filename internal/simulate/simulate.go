// Package simulate judges a one-on-one encounter between two combatants from
// their speed, knockout counts and super-effective coverage.
package simulate

import (
	"fmt"

	"pokecalc-service/internal/damage"
	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/stats"
)

// Judgment weights.
const (
	knockOutWeight = 3
	speedWeight    = 2
	coverageWeight = 2
	verdictMargin  = 2
)

// Order says which side moves first.
type Order string

const (
	FirstMoves  Order = "first"
	SecondMoves Order = "second"
	SpeedTie    Order = "tie"
)

// Outcome is the verdict from the first side's point of view.
type Outcome string

const (
	Advantage    Outcome = "advantage"
	Even         Outcome = "even"
	Disadvantage Outcome = "disadvantage"
)

// MoveOutcome is one move's damage against the opposing side.
type MoveOutcome struct {
	Move   pokemon.Move  `json:"move"`
	Result damage.Result `json:"result"`
}

// Side summarises one combatant in the encounter.
type Side struct {
	Name  string            `json:"name"`
	Types []pokemon.Type    `json:"types"`
	Stats pokemon.BaseStats `json:"stats"`
	Speed int               `json:"speed"`
	Moves []MoveOutcome     `json:"moves"`
}

// Judgment is the scored verdict with the reasons that produced it.
type Judgment struct {
	Score   int      `json:"score"`
	Outcome Outcome  `json:"outcome"`
	Reasons []string `json:"reasons"`
}

// Result is a full one-on-one simulation.
type Result struct {
	First    Side     `json:"first"`
	Second   Side     `json:"second"`
	Faster   Order    `json:"faster"`
	Judgment Judgment `json:"judgment"`
}

// Simulator runs encounters using a moveset table for species without move pools.
type Simulator struct {
	moves Moveset
}

// New builds a simulator.
func New(moves Moveset) *Simulator {
	if moves.STABPower <= 0 {
		moves.STABPower = defaultSTABPower
	}
	return &Simulator{moves: moves}
}

// Simulate evaluates first against second.
func (s *Simulator) Simulate(first, second pokemon.Combatant) (Result, error) {
	a, err := s.side(first, second)
	if err != nil {
		return Result{}, fmt.Errorf("first: %w", err)
	}
	b, err := s.side(second, first)
	if err != nil {
		return Result{}, fmt.Errorf("second: %w", err)
	}
	return Result{
		First:    a,
		Second:   b,
		Faster:   faster(a.Speed, b.Speed),
		Judgment: judge(a, b),
	}, nil
}

func (s *Simulator) side(attacker, defender pokemon.Combatant) (Side, error) {
	if err := attacker.Validate(); err != nil {
		return Side{}, err
	}
	computed := stats.Calculate(attacker)
	side := Side{
		Name:  attacker.Species.Name,
		Types: attacker.Species.Types,
		Stats: computed,
		Speed: computed.Speed,
	}
	for _, mv := range s.moves.MovesFor(attacker.Species) {
		res, err := damage.Calculate(attacker, defender, mv)
		if err != nil {
			return Side{}, fmt.Errorf("move %s: %w", mv.Name, err)
		}
		side.Moves = append(side.Moves, MoveOutcome{Move: mv, Result: res})
	}
	return side, nil
}

func faster(a, b int) Order {
	switch {
	case a > b:
		return FirstMoves
	case a < b:
		return SecondMoves
	default:
		return SpeedTie
	}
}

// fastestKO is the lowest knockout count across a side's moves; ok is false when nothing can knock out.
func fastestKO(side Side) (turns int, ok bool) {
	for _, m := range side.Moves {
		ko := m.Result.KO
		if !m.Result.Applicable || !ko.Possible {
			continue
		}
		if !ok || ko.Min < turns {
			turns, ok = ko.Min, true
		}
	}
	return turns, ok
}

func hasSuperEffective(side Side) bool {
	for _, m := range side.Moves {
		if m.Result.Applicable && m.Result.Effectiveness > 1 {
			return true
		}
	}
	return false
}

func judge(a, b Side) Judgment {
	j := Judgment{Reasons: []string{}}

	koA, okA := fastestKO(a)
	koB, okB := fastestKO(b)
	switch {
	case okA && (!okB || koA < koB):
		j.Score += knockOutWeight
		if okB {
			j.Reasons = append(j.Reasons, fmt.Sprintf("knocks out in %d hits (opponent needs %d)", koA, koB))
		} else {
			j.Reasons = append(j.Reasons, fmt.Sprintf("knocks out in %d hits (opponent cannot knock out)", koA))
		}
	case okB && (!okA || koB < koA):
		j.Score -= knockOutWeight
		if okA {
			j.Reasons = append(j.Reasons, fmt.Sprintf("opponent knocks out first (%d hits vs %d)", koB, koA))
		} else {
			j.Reasons = append(j.Reasons, fmt.Sprintf("opponent knocks out in %d hits (no knockout possible in return)", koB))
		}
	}

	switch faster(a.Speed, b.Speed) {
	case FirstMoves:
		j.Score += speedWeight
		j.Reasons = append(j.Reasons, "outspeeds the opponent")
	case SecondMoves:
		j.Score -= speedWeight
		j.Reasons = append(j.Reasons, "is outsped by the opponent")
	}

	superA, superB := hasSuperEffective(a), hasSuperEffective(b)
	switch {
	case superA && !superB:
		j.Score += coverageWeight
		j.Reasons = append(j.Reasons, "has super-effective coverage")
	case superB && !superA:
		j.Score -= coverageWeight
		j.Reasons = append(j.Reasons, "takes super-effective hits")
	}

	switch {
	case j.Score > verdictMargin:
		j.Outcome = Advantage
	case j.Score < -verdictMargin:
		j.Outcome = Disadvantage
	default:
		j.Outcome = Even
	}
	return j
}

// Package damage computes single-hit damage ranges and knockout counts.
package damage

import (
	"fmt"
	"math"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/stats"
	"pokecalc-service/internal/typechart"
)

const (
	minRollPercent = 85
	maxRollPercent = 100
)

// Calculate computes the damage of move used by attacker against defender.
// Status moves (power 0) yield a result with Applicable set to false and no error.
func Calculate(attacker, defender pokemon.Combatant, move pokemon.Move) (Result, error) {
	if err := attacker.Validate(); err != nil {
		return Result{}, fmt.Errorf("attacker: %w", err)
	}
	if err := defender.Validate(); err != nil {
		return Result{}, fmt.Errorf("defender: %w", err)
	}

	effectiveness := typechart.Against(move.Type, defender.Species.Types)
	if move.IsStatus() {
		return notApplicable(effectiveness, stats.Of(defender, pokemon.HP)), nil
	}

	atkStat, defStat, err := statPair(move.Category)
	if err != nil {
		return Result{}, err
	}

	level := attacker.EffectiveLevel()
	attack := stats.Of(attacker, atkStat)
	defense := stats.Of(defender, defStat)
	if defense <= 0 {
		defense = 1
	}
	hp := stats.Of(defender, pokemon.HP)

	stab := pokemon.HasType(attacker.Species.Types, move.Type)
	tera := attacker.Tera.Valid() && attacker.Tera == move.Type

	// Modifiers are kept as an exact fraction so the roll floors match the formula.
	num := int64(BaseDamage(level, move.Power, attack, defense))
	den := int64(1)
	if stab {
		num, den = num*3, den*2
	}
	num, den = num*int64(math.Round(effectiveness*4)), den*4
	if tera {
		num, den = num*3, den*2
	}
	minDamage := int(num * minRollPercent / (den * 100))
	maxDamage := int(num * maxRollPercent / (den * 100))

	return Result{
		Applicable: true,
		Damage: Range{
			Min:     minDamage,
			Max:     maxDamage,
			Average: (minDamage + maxDamage) / 2,
		},
		Percentage: PercentRange{
			Min: percentOf(minDamage, hp),
			Max: percentOf(maxDamage, hp),
		},
		KO:            knockOut(hp, minDamage, maxDamage),
		Effectiveness: effectiveness,
		STAB:          stab,
		TeraBoost:     tera,
		Stats: StatsUsed{
			Level:      level,
			Attack:     attack,
			Defense:    defense,
			DefenderHP: hp,
		},
	}, nil
}

// BaseDamage is floor(floor(floor(level*2/5 + 2) * power * attack / defense) / 50) + 2.
func BaseDamage(level, power, attack, defense int) int {
	if defense <= 0 {
		defense = 1
	}
	return (2*level/5+2)*power*attack/defense/50 + 2
}

func statPair(category pokemon.Category) (pokemon.Stat, pokemon.Stat, error) {
	switch category.Normalize() {
	case pokemon.Physical:
		return pokemon.Attack, pokemon.Defense, nil
	case pokemon.Special:
		return pokemon.SpecialAttack, pokemon.SpecialDefense, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", pokemon.ErrInvalidMoveCategory, category)
}

func notApplicable(effectiveness float64, hp int) Result {
	return Result{
		Applicable:    false,
		Effectiveness: effectiveness,
		KO:            KnockOut{Text: "not applicable"},
		Stats:         StatsUsed{DefenderHP: hp},
	}
}

func percentOf(damage, hp int) Percent {
	if hp <= 0 {
		return 0
	}
	return roundPercent(float64(damage) / float64(hp) * 100)
}

func knockOut(hp, minDamage, maxDamage int) KnockOut {
	if maxDamage <= 0 {
		return KnockOut{Text: "no knockout possible"}
	}
	fastest := ceilDiv(hp, maxDamage)
	if minDamage <= 0 {
		return KnockOut{
			Min:      fastest,
			Possible: true,
			Text:     fmt.Sprintf("random, %d or more turns", fastest),
		}
	}
	slowest := ceilDiv(hp, minDamage)
	if fastest == slowest {
		return KnockOut{
			Min:        fastest,
			Max:        slowest,
			Possible:   true,
			Guaranteed: true,
			Text:       fmt.Sprintf("guaranteed in %d %s", fastest, turns(fastest)),
		}
	}
	return KnockOut{
		Min:      fastest,
		Max:      slowest,
		Possible: true,
		Text:     fmt.Sprintf("random, %d to %d turns", fastest, slowest),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func turns(n int) string {
	if n == 1 {
		return "turn"
	}
	return "turns"
}

// Package stats converts base stats and training values into in-battle stat values.
package stats

import (
	"math"

	"pokecalc-service/internal/domain/pokemon"
)

// floorEpsilon absorbs binary rounding in products such as 140*1.1.
const floorEpsilon = 1e-9

// Value computes a non-HP stat:
// floor((floor((2*base + iv + floor(ev/4)) * level / 100) + 5) * nature).
// A non-positive level defaults to 50 and a non-positive nature to 1.0. EVs are not clamped.
func Value(base, iv, ev, level int, nature float64) int {
	if nature <= 0 {
		nature = 1.0
	}
	raw := scaled(base, iv, ev, normalizeLevel(level)) + 5
	return int(math.Floor(float64(raw)*nature + floorEpsilon))
}

// HP computes the hit point stat: floor((2*base + iv + floor(ev/4)) * level / 100) + level + 10.
func HP(base, iv, ev, level int) int {
	level = normalizeLevel(level)
	return scaled(base, iv, ev, level) + level + 10
}

// Calculate returns all six in-battle stats for a combatant.
func Calculate(c pokemon.Combatant) pokemon.BaseStats {
	level := c.EffectiveLevel()
	base := c.Species.Stats
	return pokemon.BaseStats{
		HP:             HP(base.HP, c.IVs.HP, c.EVs.HP, level),
		Attack:         Of(c, pokemon.Attack),
		Defense:        Of(c, pokemon.Defense),
		SpecialAttack:  Of(c, pokemon.SpecialAttack),
		SpecialDefense: Of(c, pokemon.SpecialDefense),
		Speed:          Of(c, pokemon.Speed),
	}
}

// Of computes a single in-battle stat for a combatant.
func Of(c pokemon.Combatant, s pokemon.Stat) int {
	level := c.EffectiveLevel()
	base := c.Species.Stats.Get(s)
	if s == pokemon.HP {
		return HP(base, c.IVs.HP, c.EVs.HP, level)
	}
	return Value(base, c.IVs.Get(s), c.EVs.Get(s), level, c.Nature.Multiplier(s))
}

func scaled(base, iv, ev, level int) int {
	return (2*nonNegative(base) + nonNegative(iv) + nonNegative(ev)/4) * level / 100
}

func normalizeLevel(level int) int {
	if level <= 0 {
		return pokemon.DefaultLevel
	}
	return level
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

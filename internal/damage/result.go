package damage

import (
	"math"
	"strconv"
)

// Percent is a share of the defender's max HP, encoded with one decimal.
type Percent float64

// MarshalJSON renders the value with exactly one decimal place.
func (p Percent) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 1, 64), nil
}

func roundPercent(v float64) Percent {
	return Percent(math.Round(v*10) / 10)
}

// Range is the damage spread between the lowest and highest random roll.
type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"average"`
}

// PercentRange mirrors Range as a share of the defender's HP.
type PercentRange struct {
	Min Percent `json:"min"`
	Max Percent `json:"max"`
}

// KnockOut is the number of hits needed to faint the defender.
// Possible is false when the move can never deal damage. Max is 0 when the lowest roll deals nothing.
type KnockOut struct {
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	Possible   bool   `json:"possible"`
	Guaranteed bool   `json:"guaranteed"`
	Text       string `json:"text"`
}

// StatsUsed records the in-battle values that fed the formula.
type StatsUsed struct {
	Level      int `json:"level"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	DefenderHP int `json:"defenderHp"`
}

// Result is the outcome of one attacker/defender/move calculation.
type Result struct {
	Applicable    bool         `json:"applicable"`
	Damage        Range        `json:"damage"`
	Percentage    PercentRange `json:"percentage"`
	KO            KnockOut     `json:"ko"`
	Effectiveness float64      `json:"effectiveness"`
	STAB          bool         `json:"stab"`
	TeraBoost     bool         `json:"teraBoost"`
	Stats         StatsUsed    `json:"stats"`
}

// Package typechart holds the 18x18 attacking-versus-defending type multiplier table.
package typechart

import "pokecalc-service/internal/domain/pokemon"

// Rows are attacking types, columns defending types, both in pokemon.Type order starting at Normal.
var chart = [pokemon.TypeCount][pokemon.TypeCount]float64{
	//  nor  fir  wat  ele  gra  ice  fig  poi  gro  fly  psy  bug  roc  gho  dra  dar  ste  fai
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, .5, 0, 1, 1, .5, 1},      // normal
	{1, .5, .5, 1, 2, 2, 1, 1, 1, 1, 1, 2, .5, 1, .5, 1, 2, 1},    // fire
	{1, 2, .5, 1, .5, 1, 1, 1, 2, 1, 1, 1, 2, 1, .5, 1, 1, 1},     // water
	{1, 1, 2, .5, .5, 1, 1, 1, 0, 2, 1, 1, 1, 1, .5, 1, 1, 1},     // electric
	{1, .5, 2, 1, .5, 1, 1, .5, 2, .5, 1, .5, 2, 1, .5, 1, .5, 1}, // grass
	{1, .5, .5, 1, 2, .5, 1, 1, 2, 2, 1, 1, 1, 1, 2, 1, .5, 1},    // ice
	{2, 1, 1, 1, 1, 2, 1, .5, 1, .5, .5, .5, 2, 0, 1, 2, 2, .5},   // fighting
	{1, 1, 1, 1, 2, 1, 1, .5, .5, 1, 1, 1, .5, .5, 1, 1, 0, 2},    // poison
	{1, 2, 1, 2, .5, 1, 1, 2, 1, 0, 1, .5, 2, 1, 1, 1, 2, 1},      // ground
	{1, 1, 1, .5, 2, 1, 2, 1, 1, 1, 1, 2, .5, 1, 1, 1, .5, 1},     // flying
	{1, 1, 1, 1, 1, 1, 2, 2, 1, 1, .5, 1, 1, 1, 1, 0, .5, 1},      // psychic
	{1, .5, 1, 1, 2, 1, .5, .5, 1, .5, 2, 1, 1, .5, 1, 2, .5, .5}, // bug
	{1, 2, 1, 1, 1, 2, .5, 1, .5, 2, 1, 2, 1, 1, 1, 1, .5, 1},     // rock
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, .5, 1, 1},       // ghost
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, .5, 0},       // dragon
	{1, 1, 1, 1, 1, 1, .5, 1, 1, 1, 2, 1, 1, 2, 1, .5, 1, .5},     // dark
	{1, .5, .5, .5, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, .5, 2},    // steel
	{1, .5, 1, 1, 1, 1, 2, .5, 1, 1, 1, 1, 1, 1, 2, 2, .5, 1},     // fairy
}

// Effectiveness returns the multiplier of an attacking type against a single defending type.
// Pairs involving an unknown type are neutral.
func Effectiveness(attacking, defending pokemon.Type) float64 {
	if !attacking.Valid() || !defending.Valid() {
		return 1
	}
	return chart[attacking-1][defending-1]
}

// Against returns the product of the attacking type's multipliers against every defending type.
func Against(attacking pokemon.Type, defending []pokemon.Type) float64 {
	eff := 1.0
	for _, d := range defending {
		eff *= Effectiveness(attacking, d)
	}
	return eff
}

// IsImmune reports whether any defending type fully blocks the attacking type.
func IsImmune(attacking pokemon.Type, defending []pokemon.Type) bool {
	for _, d := range defending {
		if Effectiveness(attacking, d) == 0 {
			return true
		}
	}
	return false
}

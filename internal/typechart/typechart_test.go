package typechart

import (
	"testing"

	"pokecalc-service/internal/domain/pokemon"
)

func TestEffectivenessKnownPairs(t *testing.T) {
	cases := []struct {
		atk, def pokemon.Type
		want     float64
	}{
		{pokemon.Fire, pokemon.Grass, 2},
		{pokemon.Water, pokemon.Fire, 2},
		{pokemon.Electric, pokemon.Ground, 0},
		{pokemon.Normal, pokemon.Ghost, 0},
		{pokemon.Ghost, pokemon.Normal, 0},
		{pokemon.Dragon, pokemon.Fairy, 0},
		{pokemon.Psychic, pokemon.Dark, 0},
		{pokemon.Ground, pokemon.Flying, 0},
		{pokemon.Poison, pokemon.Steel, 0},
		{pokemon.Fighting, pokemon.Ghost, 0},
		{pokemon.Fairy, pokemon.Dragon, 2},
		{pokemon.Steel, pokemon.Steel, .5},
		{pokemon.Normal, pokemon.Fire, 1},
	}
	for _, tc := range cases {
		if got := Effectiveness(tc.atk, tc.def); got != tc.want {
			t.Fatalf("%s vs %s: expected %v, got %v", tc.atk, tc.def, tc.want, got)
		}
	}
}

func TestEffectivenessUnknownIsNeutral(t *testing.T) {
	if got := Effectiveness(pokemon.Unknown, pokemon.Fire); got != 1 {
		t.Fatalf("expected neutral for unknown attacker, got %v", got)
	}
	if got := Effectiveness(pokemon.Fire, pokemon.Type(200)); got != 1 {
		t.Fatalf("expected neutral for out of range defender, got %v", got)
	}
}

func TestEffectivenessOnlyUsesChartValues(t *testing.T) {
	allowed := map[float64]bool{0: true, .5: true, 1: true, 2: true}
	for _, atk := range pokemon.AllTypes() {
		for _, def := range pokemon.AllTypes() {
			if v := Effectiveness(atk, def); !allowed[v] {
				t.Fatalf("%s vs %s produced %v", atk, def, v)
			}
		}
	}
}

func TestAgainstDualTypesStaysInRange(t *testing.T) {
	allowed := map[float64]bool{0: true, .25: true, .5: true, 1: true, 2: true, 4: true}
	all := pokemon.AllTypes()
	for _, atk := range all {
		for _, d1 := range all {
			for _, d2 := range all {
				defenders := []pokemon.Type{d1, d2}
				got := Against(atk, defenders)
				if d1 == d2 {
					continue
				}
				if !allowed[got] {
					t.Fatalf("%s vs %s/%s produced %v", atk, d1, d2, got)
				}
				if IsImmune(atk, defenders) && got != 0 {
					t.Fatalf("%s vs %s/%s expected immunity, got %v", atk, d1, d2, got)
				}
			}
		}
	}
}

func TestAgainstMultipliesDefenders(t *testing.T) {
	if got := Against(pokemon.Ice, []pokemon.Type{pokemon.Dragon, pokemon.Flying}); got != 4 {
		t.Fatalf("expected 4x, got %v", got)
	}
	if got := Against(pokemon.Fire, []pokemon.Type{pokemon.Water, pokemon.Rock}); got != .25 {
		t.Fatalf("expected 0.25x, got %v", got)
	}
	if got := Against(pokemon.Fire, nil); got != 1 {
		t.Fatalf("expected neutral with no defenders, got %v", got)
	}
}

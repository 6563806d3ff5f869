package damage

import (
	"encoding/json"
	"errors"
	"testing"

	"pokecalc-service/internal/domain/pokemon"
)

func flatSpecies(name string, types ...pokemon.Type) pokemon.Species {
	return pokemon.Species{
		Name:  name,
		Types: types,
		Stats: pokemon.BaseStats{HP: 100, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
	}
}

func TestBaseDamage(t *testing.T) {
	// floor(floor(22*100*150/100)/50)+2
	if got := BaseDamage(50, 100, 150, 100); got != 68 {
		t.Fatalf("expected 68, got %d", got)
	}
	if got := BaseDamage(50, 100, 150, 0); got <= 0 {
		t.Fatalf("expected zero defense to be guarded, got %d", got)
	}
}

func TestRollRangeOnBaseDamage(t *testing.T) {
	base := int64(BaseDamage(50, 100, 150, 100))
	if got := base * minRollPercent / 100; got != 57 {
		t.Fatalf("expected min 57, got %d", got)
	}
	if got := base * maxRollPercent / 100; got != 68 {
		t.Fatalf("expected max 68, got %d", got)
	}
}

func TestCalculateSuperEffectiveNoSTAB(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Normal))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "close-combat", Type: pokemon.Fighting, Power: 100, Category: pokemon.Physical}

	got, err := Calculate(attacker, defender, move)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// attack 120, defense 120, base 46, x2
	if got.Damage.Min != 78 || got.Damage.Max != 92 || got.Damage.Average != 85 {
		t.Fatalf("unexpected damage %+v", got.Damage)
	}
	if got.Stats.DefenderHP != 175 {
		t.Fatalf("expected defender hp 175, got %d", got.Stats.DefenderHP)
	}
	if got.Percentage.Min != 44.6 || got.Percentage.Max != 52.6 {
		t.Fatalf("unexpected percentages %+v", got.Percentage)
	}
	if got.KO.Min != 2 || got.KO.Max != 3 || got.KO.Guaranteed || got.KO.Text != "random, 2 to 3 turns" {
		t.Fatalf("unexpected ko %+v", got.KO)
	}
	if got.STAB || got.TeraBoost || got.Effectiveness != 2 {
		t.Fatalf("unexpected modifiers %+v", got)
	}
}

func TestCalculateSTABAndDoubleSuperEffective(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Fire, pokemon.Flying))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Grass, pokemon.Bug))
	move := pokemon.Move{Name: "flamethrower", Type: pokemon.Fire, Power: 100, Category: pokemon.Special}

	got, err := Calculate(attacker, defender, move)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Effectiveness != 4 || !got.STAB {
		t.Fatalf("expected 4x with stab, got %+v", got)
	}
	base := BaseDamage(50, 100, 120, 120)
	if got.Damage.Max != base*6 {
		t.Fatalf("expected max %d, got %d", base*6, got.Damage.Max)
	}
	if got.Damage.Min != 234 {
		t.Fatalf("expected min 234, got %d", got.Damage.Min)
	}
}

func TestCalculateTeraBoost(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Fire))
	attacker.Tera = pokemon.Fire
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "flamethrower", Type: pokemon.Fire, Power: 100, Category: pokemon.Special}

	got, err := Calculate(attacker, defender, move)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// 46 * 1.5 * 1.5
	if !got.TeraBoost || got.Damage.Max != 103 {
		t.Fatalf("expected tera boosted max 103, got %+v", got.Damage)
	}
}

func TestCalculateImmunity(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Normal))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Ghost))
	move := pokemon.Move{Name: "body-slam", Type: pokemon.Normal, Power: 85, Category: pokemon.Physical}

	got, err := Calculate(attacker, defender, move)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Damage.Max != 0 || got.KO.Possible || got.KO.Text != "no knockout possible" {
		t.Fatalf("expected no damage against immune defender, got %+v", got)
	}
}

func TestCalculateStatusMoveNotApplicable(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Normal))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "swords-dance", Type: pokemon.Normal, Category: pokemon.Status}

	got, err := Calculate(attacker, defender, move)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Applicable || got.Damage.Max != 0 {
		t.Fatalf("expected not applicable result, got %+v", got)
	}
}

func TestCalculateInvalidCategory(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Normal))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "mystery", Type: pokemon.Normal, Power: 80, Category: "other"}

	_, err := Calculate(attacker, defender, move)
	if !errors.Is(err, pokemon.ErrInvalidMoveCategory) {
		t.Fatalf("expected invalid category error, got %v", err)
	}
}

func TestCalculateIncompleteCombatant(t *testing.T) {
	attacker := pokemon.NewCombatant(pokemon.Species{Name: "missingno"})
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "tackle", Type: pokemon.Normal, Power: 40, Category: pokemon.Physical}

	_, err := Calculate(attacker, defender, move)
	if !errors.Is(err, pokemon.ErrIncompleteCombatant) {
		t.Fatalf("expected incomplete combatant error, got %v", err)
	}
}

func TestCalculateAcceptsUnnormalizedCategory(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Normal))
	defender := pokemon.NewCombatant(flatSpecies("defender", pokemon.Normal))
	move := pokemon.Move{Name: "tackle", Type: pokemon.Normal, Power: 40, Category: " Physical "}

	if _, err := Calculate(attacker, defender, move); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCalculateMinNeverExceedsMax(t *testing.T) {
	attacker := pokemon.NewCombatant(flatSpecies("attacker", pokemon.Water, pokemon.Ground))
	for _, defType := range pokemon.AllTypes() {
		defender := pokemon.NewCombatant(flatSpecies("defender", defType))
		for _, moveType := range pokemon.AllTypes() {
			for _, power := range []int{10, 60, 120, 250} {
				move := pokemon.Move{Name: "probe", Type: moveType, Power: power, Category: pokemon.Physical}
				got, err := Calculate(attacker, defender, move)
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				if got.Damage.Min > got.Damage.Max || got.Percentage.Min > got.Percentage.Max {
					t.Fatalf("min above max for %s vs %s power %d: %+v", moveType, defType, power, got)
				}
			}
		}
	}
}

func TestKnockOut(t *testing.T) {
	cases := []struct {
		name     string
		hp       int
		min, max int
		want     KnockOut
	}{
		{"guaranteed ohko", 100, 120, 140, KnockOut{Min: 1, Max: 1, Possible: true, Guaranteed: true, Text: "guaranteed in 1 turn"}},
		{"guaranteed 2hko", 100, 50, 60, KnockOut{Min: 2, Max: 2, Possible: true, Guaranteed: true, Text: "guaranteed in 2 turns"}},
		{"random", 100, 40, 55, KnockOut{Min: 2, Max: 3, Possible: true, Text: "random, 2 to 3 turns"}},
		{"zero min", 100, 0, 1, KnockOut{Min: 100, Possible: true, Text: "random, 100 or more turns"}},
		{"no damage", 100, 0, 0, KnockOut{Text: "no knockout possible"}},
	}
	for _, tc := range cases {
		if got := knockOut(tc.hp, tc.min, tc.max); got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestPercentMarshalsOneDecimal(t *testing.T) {
	data, err := json.Marshal(PercentRange{Min: 44.6, Max: 100})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(data) != `{"min":44.6,"max":100.0}` {
		t.Fatalf("unexpected json %s", data)
	}
}

package pokeapi

import (
	"fmt"
	"sort"

	"pokecalc-service/internal/domain/pokemon"
)

func mapSpecies(r pokemonResponse) (pokemon.Species, error) {
	slots := append([]typeSlot(nil), r.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Type.Name
	}
	types, err := pokemon.ParseTypes(names)
	if err != nil {
		return pokemon.Species{}, err
	}

	var rec pokemon.StatRecord
	for _, s := range r.Stats {
		v := s.BaseStat
		switch s.Stat.Name {
		case "hp":
			rec.HP = &v
		case "attack":
			rec.Attack = &v
		case "defense":
			rec.Defense = &v
		case "special-attack":
			rec.SpecialAttack = &v
		case "special-defense":
			rec.SpecialDefense = &v
		case "speed":
			rec.Speed = &v
		}
	}
	stats, err := rec.Resolve()
	if err != nil {
		return pokemon.Species{}, err
	}

	// Move pools are left empty: the full learnset is hundreds of entries,
	// and the simulator falls back to its moveset table.
	sp := pokemon.Species{Name: r.Name, Types: types, Stats: stats}
	for _, a := range r.Abilities {
		sp.Abilities = append(sp.Abilities, a.Ability.Name)
	}
	if err := sp.Validate(); err != nil {
		return pokemon.Species{}, err
	}
	return sp, nil
}

func mapMove(r moveResponse) (pokemon.Move, error) {
	t, err := pokemon.ParseType(r.Type.Name)
	if err != nil {
		return pokemon.Move{}, err
	}
	category := pokemon.Category(r.DamageClass.Name).Normalize()
	switch category {
	case pokemon.Physical, pokemon.Special, pokemon.Status:
	default:
		return pokemon.Move{}, fmt.Errorf("%w: %q", pokemon.ErrInvalidMoveCategory, r.DamageClass.Name)
	}
	mv := pokemon.Move{Name: r.Name, Type: t, Category: category}
	// null power covers status moves and variable-power attacks alike
	if r.Power != nil {
		mv.Power = *r.Power
	}
	return mv, nil
}

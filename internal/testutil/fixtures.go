package testutil

import "pokecalc-service/internal/domain/pokemon"

// SampleSpecies returns a species with flat 100 base stats and the given types.
func SampleSpecies(name string, types ...pokemon.Type) pokemon.Species {
	if len(types) == 0 {
		types = []pokemon.Type{pokemon.Normal}
	}
	return pokemon.Species{
		Name:  name,
		Types: types,
		Stats: pokemon.BaseStats{HP: 100, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
	}
}

// SampleMove returns a damaging move of the given type and category.
func SampleMove(name string, t pokemon.Type, power int, category pokemon.Category) pokemon.Move {
	return pokemon.Move{Name: name, Type: t, Power: power, Category: category}
}

package pokeapi

type namedResource struct {
	Name string `json:"name"`
}

type pokemonResponse struct {
	Name      string        `json:"name"`
	Types     []typeSlot    `json:"types"`
	Stats     []statEntry   `json:"stats"`
	Abilities []abilitySlot `json:"abilities"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type statEntry struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type abilitySlot struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type moveResponse struct {
	Name        string        `json:"name"`
	Power       *int          `json:"power"`
	Type        namedResource `json:"type"`
	DamageClass namedResource `json:"damage_class"`
}

package pokemon

import (
	"fmt"
	"strings"
)

// Type is one of the 18 elemental types. The zero value is Unknown.
type Type uint8

// The order below indexes the type chart; it carries no meaning for callers.
const (
	Unknown Type = iota
	Normal
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
)

// TypeCount is the number of real elemental types.
const TypeCount = 18

var typeNames = [...]string{
	Unknown:  "unknown",
	Normal:   "normal",
	Fire:     "fire",
	Water:    "water",
	Electric: "electric",
	Grass:    "grass",
	Ice:      "ice",
	Fighting: "fighting",
	Poison:   "poison",
	Ground:   "ground",
	Flying:   "flying",
	Psychic:  "psychic",
	Bug:      "bug",
	Rock:     "rock",
	Ghost:    "ghost",
	Dragon:   "dragon",
	Dark:     "dark",
	Steel:    "steel",
	Fairy:    "fairy",
}

// AllTypes returns the 18 real types in chart order.
func AllTypes() []Type {
	out := make([]Type, 0, TypeCount)
	for t := Normal; t <= Fairy; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is one of the 18 real types.
func (t Type) Valid() bool {
	return t >= Normal && t <= Fairy
}

// String returns the lower-case type name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[Unknown]
}

// ParseType resolves a type name case-insensitively.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := Normal; i <= Fairy; i++ {
		if typeNames[i] == key {
			return i, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// ParseTypes resolves a list of type names.
func ParseTypes(names []string) ([]Type, error) {
	out := make([]Type, 0, len(names))
	for _, n := range names {
		t, err := ParseType(n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// MarshalText encodes the type as its name.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// HasType reports whether types contains t.
func HasType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

package providers

import (
	"context"

	"pokecalc-service/internal/domain/pokemon"
)

// SpeciesProvider resolves a species by display name, alias or identifier.
// Unknown names return a *NotFoundError; transport failures wrap pokemon.ErrDataUnavailable.
type SpeciesProvider interface {
	FetchSpecies(ctx context.Context, name string) (pokemon.Species, error)
}

// MoveProvider resolves a move by name.
type MoveProvider interface {
	FetchMove(ctx context.Context, name string) (pokemon.Move, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	SpeciesProvider
	MoveProvider
}

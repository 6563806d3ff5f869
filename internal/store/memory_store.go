// Package store holds cached species and move records for the caching provider.
package store

import (
	"context"
	"sync"
	"time"

	"pokecalc-service/internal/domain/pokemon"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryStore keeps records in process memory. A zero ttl never expires entries.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	species map[string]entry[pokemon.Species]
	moves   map[string]entry[pokemon.Move]
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		species: make(map[string]entry[pokemon.Species]),
		moves:   make(map[string]entry[pokemon.Move]),
	}
}

func (s *MemoryStore) GetSpecies(_ context.Context, key string) (pokemon.Species, bool, error) {
	v, ok := lookup(s, s.species, key)
	return v, ok, nil
}

func (s *MemoryStore) SetSpecies(_ context.Context, key string, species pokemon.Species) error {
	put(s, s.species, key, species)
	return nil
}

func (s *MemoryStore) GetMove(_ context.Context, key string) (pokemon.Move, bool, error) {
	v, ok := lookup(s, s.moves, key)
	return v, ok, nil
}

func (s *MemoryStore) SetMove(_ context.Context, key string, move pokemon.Move) error {
	put(s, s.moves, key, move)
	return nil
}

// Len reports how many unexpired species and moves are held.
func (s *MemoryStore) Len() (species, moves int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	for _, e := range s.species {
		if !s.expired(e.expiresAt, now) {
			species++
		}
	}
	for _, e := range s.moves {
		if !s.expired(e.expiresAt, now) {
			moves++
		}
	}
	return species, moves
}

func (s *MemoryStore) expired(at, now time.Time) bool {
	return !at.IsZero() && !now.Before(at)
}

func lookup[T any](s *MemoryStore, m map[string]entry[T], key string) (T, bool) {
	s.mu.RLock()
	e, ok := m[key]
	s.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if s.expired(e.expiresAt, s.now()) {
		s.mu.Lock()
		if cur, still := m[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(m, key)
		}
		s.mu.Unlock()
		var zero T
		return zero, false
	}
	return e.value, true
}

func put[T any](s *MemoryStore, m map[string]entry[T], key string, value T) {
	e := entry[T]{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	m[key] = e
	s.mu.Unlock()
}

package teststubs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"pokecalc-service/internal/domain/pokemon"
)

// ErrStubMissing is returned by StubProvider for names it does not hold and no MissingErr is set.
var ErrStubMissing = errors.New("stub: unknown name")

// StubProvider is a test double for providers.DataProvider. Lookups are case-insensitive.
type StubProvider struct {
	Species map[string]pokemon.Species
	Moves   map[string]pokemon.Move
	// Err, when set, is returned for every call.
	Err error
	// MissingErr is returned for unknown names.
	MissingErr error
	// Fail maps names to the error returned for them.
	Fail   map[string]error
	Calls  atomic.Int32
	Notify chan struct{}

	mu     sync.Mutex
	served []string
}

func (s *StubProvider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	if err := s.record(ctx, name); err != nil {
		return pokemon.Species{}, err
	}
	if sp, ok := s.Species[strings.ToLower(name)]; ok {
		return sp, nil
	}
	return pokemon.Species{}, s.missing()
}

func (s *StubProvider) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	if err := s.record(ctx, name); err != nil {
		return pokemon.Move{}, err
	}
	if mv, ok := s.Moves[strings.ToLower(name)]; ok {
		return mv, nil
	}
	return pokemon.Move{}, s.missing()
}

// Served returns the names requested so far, in call order.
func (s *StubProvider) Served() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.served...)
}

func (s *StubProvider) record(ctx context.Context, name string) error {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.served = append(s.served, name)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Err != nil {
		return s.Err
	}
	if err, ok := s.Fail[strings.ToLower(name)]; ok {
		return err
	}
	return nil
}

func (s *StubProvider) missing() error {
	if s.MissingErr != nil {
		return s.MissingErr
	}
	return ErrStubMissing
}

// StubCache is a test double for providers.Cache backed by plain maps.
type StubCache struct {
	GetErr error
	SetErr error

	mu      sync.Mutex
	species map[string]pokemon.Species
	moves   map[string]pokemon.Move
}

func (c *StubCache) GetSpecies(_ context.Context, key string) (pokemon.Species, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return pokemon.Species{}, false, c.GetErr
	}
	sp, ok := c.species[key]
	return sp, ok, nil
}

func (c *StubCache) SetSpecies(_ context.Context, key string, sp pokemon.Species) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	if c.species == nil {
		c.species = make(map[string]pokemon.Species)
	}
	c.species[key] = sp
	return nil
}

func (c *StubCache) GetMove(_ context.Context, key string) (pokemon.Move, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return pokemon.Move{}, false, c.GetErr
	}
	mv, ok := c.moves[key]
	return mv, ok, nil
}

func (c *StubCache) SetMove(_ context.Context, key string, mv pokemon.Move) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	if c.moves == nil {
		c.moves = make(map[string]pokemon.Move)
	}
	c.moves[key] = mv
	return nil
}

// Keys returns how many species and moves are cached.
func (c *StubCache) Keys() (species, moves int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.species), len(c.moves)
}

package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/teststubs"
)

func rosterStub() *teststubs.StubProvider {
	mk := func(name string, t pokemon.Type) pokemon.Species {
		return pokemon.Species{
			Name:  name,
			Types: []pokemon.Type{t},
			Stats: pokemon.BaseStats{HP: 50, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 50},
		}
	}
	return &teststubs.StubProvider{
		Species: map[string]pokemon.Species{
			"blastoise": mk("blastoise", pokemon.Water),
			"venusaur":  mk("venusaur", pokemon.Grass),
			"charizard": mk("charizard", pokemon.Fire),
			"broken":    {Name: "broken"},
		},
		Fail: map[string]error{"flaky": errors.New("connection reset")},
	}
}

func TestResolveRosterKeepsOrderAndPerSlotErrors(t *testing.T) {
	names := []string{"charizard", "missingno", "blastoise", "flaky", "broken", "venusaur"}
	got := ResolveRoster(context.Background(), rosterStub(), names, time.Second)

	if len(got) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(got))
	}
	for i, r := range got {
		if r.Name != names[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, names[i], r.Name)
		}
	}
	if got[0].Err != nil || got[0].Species.Name != "charizard" {
		t.Fatalf("unexpected first slot %+v", got[0])
	}
	if !errors.Is(got[3].Err, pokemon.ErrDataUnavailable) {
		t.Fatalf("expected transport failure to be data unavailable, got %v", got[3].Err)
	}
	if !errors.Is(got[4].Err, pokemon.ErrIncompleteCombatant) {
		t.Fatalf("expected incomplete record error, got %v", got[4].Err)
	}
	if got[1].Err == nil || got[5].Err != nil {
		t.Fatalf("unexpected errors %v / %v", got[1].Err, got[5].Err)
	}
}

func TestFetchAllFailsOnFirstError(t *testing.T) {
	if _, err := FetchAll(context.Background(), rosterStub(), []string{"blastoise", "flaky"}, time.Second); !errors.Is(err, pokemon.ErrDataUnavailable) {
		t.Fatalf("expected data unavailable, got %v", err)
	}
	got, err := FetchAll(context.Background(), rosterStub(), []string{"venusaur", "blastoise"}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got[0].Name != "venusaur" || got[1].Name != "blastoise" {
		t.Fatalf("unexpected order %+v", got)
	}
}

type blockingProvider struct{}

func (blockingProvider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	<-ctx.Done()
	return pokemon.Species{}, ctx.Err()
}

func TestResolveRosterTimeoutIsDataUnavailable(t *testing.T) {
	got := ResolveRoster(context.Background(), blockingProvider{}, []string{"slowpoke"}, 5*time.Millisecond)
	if !errors.Is(got[0].Err, pokemon.ErrDataUnavailable) || !errors.Is(got[0].Err, context.DeadlineExceeded) {
		t.Fatalf("expected timeout marked as data unavailable, got %v", got[0].Err)
	}
}

func TestResolveRosterNilProvider(t *testing.T) {
	got := ResolveRoster(context.Background(), nil, []string{"a"}, 0)
	if !errors.Is(got[0].Err, ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", got[0].Err)
	}
}

func TestWrapUnavailable(t *testing.T) {
	nf := &NotFoundError{Kind: "species", Name: "x"}
	if WrapUnavailable(nf) != error(nf) {
		t.Fatal("expected not found to pass through")
	}
	if WrapUnavailable(nil) != nil {
		t.Fatal("expected nil to stay nil")
	}
	if !errors.Is(WrapUnavailable(errors.New("eof")), pokemon.ErrDataUnavailable) {
		t.Fatal("expected generic failure to be wrapped")
	}
}

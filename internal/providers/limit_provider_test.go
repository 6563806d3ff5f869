package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/teststubs"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &teststubs.StubProvider{Species: map[string]pokemon.Species{"pikachu": {Name: "pikachu"}}}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchSpecies(context.Background(), "pikachu"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderLimitsMoves(t *testing.T) {
	inner := &teststubs.StubProvider{Moves: map[string]pokemon.Move{"tackle": {Name: "tackle"}}}
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	if mv, err := rl.FetchMove(context.Background(), "tackle"); err != nil || mv.Name != "tackle" {
		t.Fatalf("expected move, got %+v %v", mv, err)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchSpecies(ctx, "pikachu"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner DataProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	_, err := rl.FetchSpecies(context.Background(), "pikachu")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil).(*rateLimitedProvider)
	if rl.interval != time.Minute {
		t.Fatalf("expected default interval 1m, got %s", rl.interval)
	}
	rl.Close()
}

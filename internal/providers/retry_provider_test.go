package providers

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/metrics"
)

var errUpstream = errors.New("upstream 503")

// scriptedProvider returns the queued errors in order, then succeeds.
type scriptedProvider struct {
	errs  []error
	calls int
}

func (s *scriptedProvider) next() error {
	s.calls++
	if s.calls <= len(s.errs) {
		return s.errs[s.calls-1]
	}
	return nil
}

func (s *scriptedProvider) FetchSpecies(_ context.Context, name string) (pokemon.Species, error) {
	if err := s.next(); err != nil {
		return pokemon.Species{}, err
	}
	return pokemon.Species{Name: name}, nil
}

func (s *scriptedProvider) FetchMove(_ context.Context, name string) (pokemon.Move, error) {
	if err := s.next(); err != nil {
		return pokemon.Move{}, err
	}
	return pokemon.Move{Name: name}, nil
}

func newTestRetrying(inner DataProvider, rec *metrics.Recorder, attempts int) *retryingProvider {
	rp := NewRetryingProviderWithRNG(inner, nil, rec, "pokeapi", rand.New(rand.NewSource(1)), attempts, time.Millisecond).(*retryingProvider)
	rp.backoffFn = func(int) time.Duration { return 0 }
	return rp
}

func TestRetryingProviderAttempts(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		attempts  int
		wantCalls int
		wantErr   error
	}{
		{"succeeds after transient failures", []error{errUpstream, errUpstream}, 3, 3, nil},
		{"gives up at the attempt limit", []error{errUpstream, errUpstream, errUpstream}, 2, 2, errUpstream},
		{"not found is final", []error{&NotFoundError{Kind: "species", Name: "pikachuu"}}, 3, 1, ErrNotFound},
		{"rate limit is retried", []error{&RateLimitError{Provider: "pokeapi", StatusCode: 429}}, 2, 2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inner := &scriptedProvider{errs: tc.errs}
			rp := newTestRetrying(inner, metrics.NewRecorder(), tc.attempts)

			sp, err := rp.FetchSpecies(context.Background(), "pikachu")
			if tc.wantErr == nil && (err != nil || sp.Name != "pikachu") {
				t.Fatalf("expected pikachu, got %+v %v", sp, err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if inner.calls != tc.wantCalls {
				t.Fatalf("expected %d calls, got %d", tc.wantCalls, inner.calls)
			}
		})
	}
}

func TestRetryingProviderRetriesMoves(t *testing.T) {
	inner := &scriptedProvider{errs: []error{errUpstream}}
	mv, err := newTestRetrying(inner, metrics.NewRecorder(), 2).FetchMove(context.Background(), "earthquake")
	if err != nil || mv.Name != "earthquake" || inner.calls != 2 {
		t.Fatalf("expected earthquake on second call, got %+v %v (calls=%d)", mv, err, inner.calls)
	}
}

func TestRetryingProviderRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	inner := &scriptedProvider{errs: []error{&RateLimitError{Provider: "pokeapi", StatusCode: 429}}}
	if _, err := newTestRetrying(inner, rec, 2).FetchSpecies(context.Background(), "garchomp"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if rec.RateLimitHits("pokeapi") != 1 || rec.ProviderCalls("pokeapi") != 2 || rec.ProviderErrors("pokeapi") != 1 {
		t.Fatalf("unexpected counters hits=%d calls=%d errors=%d",
			rec.RateLimitHits("pokeapi"), rec.ProviderCalls("pokeapi"), rec.ProviderErrors("pokeapi"))
	}
}

func TestRetryingProviderStopsOnCancelledContext(t *testing.T) {
	rp := newTestRetrying(&scriptedProvider{errs: []error{errUpstream, errUpstream}}, metrics.NewRecorder(), 3)
	rp.backoffFn = func(int) time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := rp.FetchSpecies(ctx, "pikachu"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetryingProviderComputeDelay(t *testing.T) {
	rp := newTestRetrying(&scriptedProvider{}, metrics.NewRecorder(), 2)
	rp.backoffFn = func(int) time.Duration { return 40 * time.Millisecond }

	if got := rp.computeDelay(&RateLimitError{RetryAfter: 2 * time.Second}, 1); got != 2*time.Second {
		t.Fatalf("expected Retry-After to win, got %s", got)
	}
	for i := 0; i < 20; i++ {
		if got := rp.computeDelay(errUpstream, 1); got < 20*time.Millisecond || got > 40*time.Millisecond {
			t.Fatalf("expected jitter within [20ms, 40ms], got %s", got)
		}
	}
	rp.backoffFn = func(int) time.Duration { return 0 }
	if got := rp.computeDelay(errUpstream, 1); got != 0 {
		t.Fatalf("expected zero delay for zero backoff, got %s", got)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, metrics.NewRecorder(), "", 0, 0).(*retryingProvider)
	if rp.providerName != "provider" || rp.maxAttempts != defaultRetryAttempts || rp.backoffFn(1) != defaultBackoff {
		t.Fatalf("unexpected defaults name=%s attempts=%d", rp.providerName, rp.maxAttempts)
	}
	if _, err := rp.FetchSpecies(context.Background(), "x"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := rp.FetchMove(context.Background(), "x"); !errors.Is(err, pokemon.ErrDataUnavailable) {
		t.Fatalf("expected data unavailable, got %v", err)
	}
}

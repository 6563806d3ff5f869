package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/warmer"
)

func TestFixturesHelper(t *testing.T) {
	s := SampleSpecies("alpha")
	if s.Name != "alpha" || len(s.Types) != 1 || s.Types[0] != pokemon.Normal {
		t.Fatalf("unexpected species fixture %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid species, got %v", err)
	}
	dual := SampleSpecies("beta", pokemon.Water, pokemon.Ground)
	if len(dual.Types) != 2 {
		t.Fatalf("expected dual type, got %+v", dual.Types)
	}
	mv := SampleMove("surf", pokemon.Water, 90, pokemon.Special)
	if mv.IsStatus() || mv.Power != 90 {
		t.Fatalf("unexpected move fixture %+v", mv)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "species", "pikachu")
	if !strings.Contains(buf.String(), "species=pikachu") {
		t.Fatalf("expected buffered log line, got %s", buf.String())
	}
}

func TestPostJSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	AssertStatus(t, PostJSON(handler, "/x", `{"a":1}`), http.StatusAccepted)
}

func TestStubWarmer(t *testing.T) {
	w := &StubWarmer{Err: errors.New("stop"), StatusVal: warmer.Status{Warmed: 2}}
	w.Start(context.Background())
	if err := w.Stop(context.Background()); err == nil {
		t.Fatal("expected configured stop error")
	}
	start, stop := w.Calls()
	if start != 1 || stop != 1 || w.Status().Warmed != 2 {
		t.Fatalf("unexpected stub state start=%d stop=%d status=%+v", start, stop, w.Status())
	}
}

func TestStubHTTPServer(t *testing.T) {
	s := &StubHTTPServer{AddrVal: ":1", ListenErr: errors.New("bind: address in use")}
	if err := s.ListenAndServe(); err == nil {
		t.Fatal("expected configured listen error")
	}
	_ = s.Shutdown(context.Background())
	if listen, shutdown := s.Calls(); listen != 1 || shutdown != 1 || s.Addr() != ":1" {
		t.Fatalf("unexpected stub state listen=%d shutdown=%d addr=%s", listen, shutdown, s.Addr())
	}
	if (&StubHTTPServer{}).Addr() != ":0" || (&StubHTTPServer{}).Handler() == nil {
		t.Fatal("expected defaults for addr and handler")
	}

	if err := ClosedHTTPServer().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}

	blocked := &StubHTTPServer{Block: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := blocked.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected blocked shutdown to end with ctx, got %v", err)
	}
	close(blocked.Block)
	if err := blocked.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected unblocked shutdown, got %v", err)
	}
}

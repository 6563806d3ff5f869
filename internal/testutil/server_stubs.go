package testutil

import (
	"context"
	"net/http"
	"sync"

	"pokecalc-service/internal/warmer"
)

// StubWarmer implements the server's warmer contract for tests.
type StubWarmer struct {
	mu         sync.Mutex
	startCalls int
	stopCalls  int
	Err        error
	StatusVal  warmer.Status
}

func (w *StubWarmer) Start(context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.startCalls++
}

func (w *StubWarmer) Stop(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopCalls++
	return w.Err
}

func (w *StubWarmer) Status() warmer.Status {
	return w.StatusVal
}

// Calls reports how many times Start and Stop ran.
func (w *StubWarmer) Calls() (start, stop int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.startCalls, w.stopCalls
}

// StubHTTPServer satisfies the server's httpServer contract.
// ListenAndServe returns ListenErr immediately. When Block is set, Shutdown
// waits for it to close or for ctx to end.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// Calls reports how many times ListenAndServe and Shutdown ran.
func (s *StubHTTPServer) Calls() (listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls, s.shutdownCalls
}

// ClosedHTTPServer behaves like a server that was shut down before it could serve.
func ClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

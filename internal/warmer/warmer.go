// Package warmer periodically resolves a watchlist of species through the
// provider chain so the cache holds them before requests arrive.
package warmer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/metrics"
	"pokecalc-service/internal/providers"
)

const (
	defaultInterval      = 15 * time.Minute
	defaultLookupTimeout = 5 * time.Second
	unhealthyFailures    = 3
)

// ErrNothingWarmed is reported when every watchlist lookup in a cycle failed.
var ErrNothingWarmed = errors.New("no watchlist species could be resolved")

// Warmer resolves the watchlist on an interval.
type Warmer struct {
	provider  providers.SpeciesProvider
	watchlist []string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	timeout   time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Warmed              int
	Missed              []string
}

// IsReady reports whether a cycle has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < unhealthyFailures
}

// New constructs a Warmer. Non-positive interval and timeout use defaults.
func New(provider providers.SpeciesProvider, watchlist []string, logger *slog.Logger, recorder *metrics.Recorder, interval, timeout time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &Warmer{
		provider:  provider,
		watchlist: append([]string(nil), watchlist...),
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		timeout:   timeout,
		done:      make(chan struct{}),
	}
}

// Start warms once immediately, then on every tick until ctx is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "warmer started",
			slog.Int(logging.FieldCount, len(w.watchlist)),
			slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()),
		)
		w.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.ticker.C:
				w.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop. It is safe to call more than once.
func (w *Warmer) Stop(context.Context) error {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Warmer) warmOnce(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	resolved := providers.ResolveRoster(ctx, w.provider, w.watchlist, w.timeout)
	var missed []string
	var firstErr error
	for _, r := range resolved {
		if r.Err != nil {
			missed = append(missed, r.Name)
			if firstErr == nil {
				firstErr = r.Err
			}
			logging.Warn(w.logger, "warmer lookup failed", slog.String(logging.FieldSpecies, r.Name), slog.Any("error", r.Err))
		}
	}
	warmed := len(resolved) - len(missed)

	var err error
	if len(resolved) > 0 && warmed == 0 {
		err = fmt.Errorf("%w: %w", ErrNothingWarmed, firstErr)
	}
	w.metrics.RecordWarmCycle(time.Since(start), err)
	if err != nil {
		logging.Error(w.logger, "warmer cycle failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		w.recordFailure(err, missed)
		return
	}

	w.recordSuccess(start, warmed, missed)
	logging.Info(w.logger, "warmer refreshed watchlist",
		slog.Int(logging.FieldCount, warmed),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time, warmed int, missed []string) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
	w.status.Warmed = warmed
	w.status.Missed = missed
}

func (w *Warmer) recordFailure(err error, missed []string) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	w.status.LastError = err.Error()
	w.status.Warmed = 0
	w.status.Missed = missed
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	s := w.status
	s.Missed = append([]string(nil), s.Missed...)
	return s
}

package providers

import (
	"context"
	"log/slog"
	"time"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/logging"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSpecies(ctx context.Context, name string) (pokemon.Species, error) {
	if err := p.wait(ctx, slog.String(logging.FieldSpecies, name)); err != nil {
		return pokemon.Species{}, err
	}
	return p.next.FetchSpecies(ctx, name)
}

func (p *rateLimitedProvider) FetchMove(ctx context.Context, name string) (pokemon.Move, error) {
	if err := p.wait(ctx, slog.String(logging.FieldMove, name)); err != nil {
		return pokemon.Move{}, err
	}
	return p.next.FetchMove(ctx, name)
}

func (p *rateLimitedProvider) wait(ctx context.Context, subject slog.Attr) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", subject)
		return ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", subject)
	return nil
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

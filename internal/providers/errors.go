package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pokecalc-service/internal/domain/pokemon"
)

var (
	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrProviderUnavailable signals a missing or broken upstream.
	ErrProviderUnavailable = fmt.Errorf("provider unavailable: %w", pokemon.ErrDataUnavailable)
)

// NotFoundError reports an unknown species or move, with close matches when available.
type NotFoundError struct {
	Kind        string
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap lets rate limits match pokemon.ErrDataUnavailable.
func (e *RateLimitError) Unwrap() error {
	return pokemon.ErrDataUnavailable
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// retryable reports whether another attempt could change the outcome.
func retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

// WrapUnavailable marks transport-level failures (timeouts, broken upstreams)
// with pokemon.ErrDataUnavailable. Not-found and validation errors pass through.
func WrapUnavailable(err error) error {
	if err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, pokemon.ErrDataUnavailable) ||
		pokemon.IsValidationError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", pokemon.ErrDataUnavailable, err)
}

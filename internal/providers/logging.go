package providers

import (
	"context"
	"log/slog"

	"pokecalc-service/internal/logging"
)

// logWithProvider logs through the request logger in ctx when present, else logger.
// Every entry carries the provider label.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider, msg string, args ...any) {
	if logger = logging.FromContext(ctx, logger); logger == nil {
		return
	}
	logger.Log(ctx, level, msg, append(args, slog.String(logging.FieldProvider, provider))...)
}

package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/team-scores-service/internal/logging"
)

// logWithLeague emits a log entry if logger is non-nil and always includes the league key.
func logWithLeague(ctx context.Context, logger *slog.Logger, level slog.Level, league string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldLeague, league))
	logger.Log(ctx, level, msg, args...)
}

package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
)

// instrumentedProvider wraps a ScoreboardProvider with logging and fetch metrics.
type instrumentedProvider struct {
	inner   ScoreboardProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider records every fetch. It never retries.
func NewInstrumentedProvider(inner ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder) ScoreboardProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	if p.inner == nil {
		logWithLeague(ctx, p.logger, slog.LevelWarn, league.Key, "provider unavailable")
		return scoreboard.Document{}, &FetchError{League: league.Key, Err: ErrProviderUnavailable}
	}

	start := p.now()
	doc, err := p.inner.FetchScoreboard(ctx, league)
	duration := p.now().Sub(start)

	p.metrics.RecordFetch(league.Key, duration, err)
	if err != nil {
		attrs := []any{
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any(logging.FieldError, err),
		}
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(league.Key, rl.RetryAfter)
			attrs = append(attrs, slog.Duration("retry_after", rl.RetryAfter))
		}
		logWithLeague(ctx, p.logger, slog.LevelWarn, league.Key, "scoreboard fetch failed", attrs...)
		return scoreboard.Document{}, err
	}

	logWithLeague(ctx, p.logger, slog.LevelDebug, league.Key, "scoreboard fetched",
		slog.Int("events", len(doc.Events)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return doc, nil
}

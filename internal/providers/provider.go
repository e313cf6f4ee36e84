package providers

import (
	"context"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// ScoreboardProvider fetches one league scoreboard.
// Implementations must not retry; a failed fetch is retried by the next refresh cycle.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error)
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/team-scores-service/internal/config"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
	"github.com/preston-bernstein/team-scores-service/internal/providers/espn"
	"github.com/preston-bernstein/team-scores-service/internal/providers/fixture"
)

const (
	providerESPN    = "espn"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	switch cfg.Provider {
	case providerESPN, "":
		return newESPNClient(cfg)
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to espn", logging.FieldProvider, cfg.Provider)
		return newESPNClient(cfg)
	}
}

func newESPNClient(cfg config.Config) *espn.Client {
	return espn.NewClient(espn.Config{
		UserAgent: cfg.ESPN.UserAgent,
		Timeout:   cfg.FetchTimeout,
	})
}

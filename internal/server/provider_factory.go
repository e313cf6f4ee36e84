package server

import (
	"log/slog"

	"github.com/preston-bernstein/team-scores-service/internal/config"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build selects the configured provider unless base is injected, then instruments it.
func (f providerFactory) build(cfg config.Config, base providers.ScoreboardProvider) providers.ScoreboardProvider {
	if base == nil {
		base = selectProvider(cfg, f.logger)
	}
	logging.Info(f.logger, "scoreboard provider selected", logging.FieldProvider, normalizeProviderName(cfg.Provider, base))
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics)
}

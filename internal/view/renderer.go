package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/domain/games"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
)

// Renderer receives display intents from the refresh loop. Rendering never
// fails from the caller's point of view; sink errors are logged.
type Renderer interface {
	ShowLoading(ctx context.Context, viewKey string)
	ShowIdle(ctx context.Context, viewKey string)
	ShowSummary(ctx context.Context, viewKey string, summary games.GameSummary)
	ShowError(ctx context.Context, viewKey string)
	ShowChampionship(ctx context.Context, champ cards.Championship, summary games.GameSummary)
}

// Sink delivers a rendered card somewhere: memory, websockets, pub/sub.
type Sink interface {
	Publish(ctx context.Context, card cards.Card) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, card cards.Card) error

func (f SinkFunc) Publish(ctx context.Context, card cards.Card) error {
	return f(ctx, card)
}

// CardRenderer turns display intents into cards and fans them out to sinks in order.
type CardRenderer struct {
	sinks   []Sink
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewCardRenderer builds a renderer. Nil sinks are skipped.
func NewCardRenderer(logger *slog.Logger, recorder *metrics.Recorder, sinks ...Sink) *CardRenderer {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &CardRenderer{
		sinks:   kept,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (r *CardRenderer) ShowLoading(ctx context.Context, viewKey string) {
	r.render(ctx, cards.Loading(viewKey, r.now()))
}

func (r *CardRenderer) ShowIdle(ctx context.Context, viewKey string) {
	r.render(ctx, cards.Idle(viewKey, r.now()))
}

func (r *CardRenderer) ShowSummary(ctx context.Context, viewKey string, summary games.GameSummary) {
	r.render(ctx, cards.FromSummary(viewKey, summary, r.now()))
}

func (r *CardRenderer) ShowError(ctx context.Context, viewKey string) {
	r.render(ctx, cards.Error(viewKey, r.now()))
}

func (r *CardRenderer) ShowChampionship(ctx context.Context, champ cards.Championship, summary games.GameSummary) {
	r.render(ctx, cards.FromChampionship(champ, summary, r.now()))
}

func (r *CardRenderer) render(ctx context.Context, card cards.Card) {
	r.metrics.RecordCardRender(string(card.State))
	for _, sink := range r.sinks {
		if err := sink.Publish(ctx, card); err != nil {
			logging.Warn(logging.FromContext(ctx, r.logger), "card publish failed",
				logging.FieldView, card.ViewKey,
				logging.FieldState, string(card.State),
				logging.FieldError, err,
			)
		}
	}
}

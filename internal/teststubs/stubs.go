package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/domain/games"
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// StubProvider is a test double for providers.ScoreboardProvider.
// Docs and Errs are keyed by league key; unknown leagues return an empty document.
type StubProvider struct {
	Docs   map[string]scoreboard.Document
	Errs   map[string]error
	Calls  atomic.Int32
	Notify chan struct{}

	mu       sync.Mutex
	byLeague map[string]int
}

// FetchScoreboard returns the configured document and error while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	s.mu.Lock()
	if s.byLeague == nil {
		s.byLeague = make(map[string]int)
	}
	s.byLeague[league.Key]++
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)

	if err := s.Errs[league.Key]; err != nil {
		return scoreboard.Document{}, err
	}
	return s.Docs[league.Key], nil
}

// CallsFor returns how many times a league was fetched.
func (s *StubProvider) CallsFor(league string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byLeague[league]
}

// RenderCall is one intent received by StubRenderer.
type RenderCall struct {
	Intent       string
	ViewKey      string
	Summary      games.GameSummary
	Championship cards.Championship
}

// Intent names recorded by StubRenderer.
const (
	IntentLoading      = "loading"
	IntentIdle         = "idle"
	IntentSummary      = "summary"
	IntentError        = "error"
	IntentChampionship = "championship"
)

// StubRenderer is a test double for view.Renderer that records every call.
type StubRenderer struct {
	mu    sync.Mutex
	calls []RenderCall
	// PanicOn makes ShowSummary panic for the given view key.
	PanicOn string
}

func (r *StubRenderer) ShowLoading(ctx context.Context, viewKey string) {
	_ = ctx
	r.record(RenderCall{Intent: IntentLoading, ViewKey: viewKey})
}

func (r *StubRenderer) ShowIdle(ctx context.Context, viewKey string) {
	_ = ctx
	r.record(RenderCall{Intent: IntentIdle, ViewKey: viewKey})
}

func (r *StubRenderer) ShowSummary(ctx context.Context, viewKey string, summary games.GameSummary) {
	_ = ctx
	if r.PanicOn != "" && r.PanicOn == viewKey {
		panic("stub renderer panic for " + viewKey)
	}
	r.record(RenderCall{Intent: IntentSummary, ViewKey: viewKey, Summary: summary})
}

func (r *StubRenderer) ShowError(ctx context.Context, viewKey string) {
	_ = ctx
	r.record(RenderCall{Intent: IntentError, ViewKey: viewKey})
}

func (r *StubRenderer) ShowChampionship(ctx context.Context, champ cards.Championship, summary games.GameSummary) {
	_ = ctx
	r.record(RenderCall{Intent: IntentChampionship, ViewKey: cards.ChampionshipViewKey, Summary: summary, Championship: champ})
}

// Calls returns a copy of every recorded call in order.
func (r *StubRenderer) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RenderCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call for a view key.
func (r *StubRenderer) Last(viewKey string) (RenderCall, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].ViewKey == viewKey {
			return r.calls[i], true
		}
	}
	return RenderCall{}, false
}

// Reset forgets recorded calls.
func (r *StubRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *StubRenderer) record(call RenderCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

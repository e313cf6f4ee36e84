package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
)

// GoodProvider returns the same document for every league.
type GoodProvider struct {
	Doc scoreboard.Document
}

func (p GoodProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	_ = league
	return p.Doc, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	_ = league
	return scoreboard.Document{}, p.Err
}

// EmptyProvider returns an empty scoreboard, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	_ = league
	return scoreboard.Document{}, nil
}

// UnavailableProvider fails every league with ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	return scoreboard.Document{}, &providers.FetchError{League: league.Key, Err: providers.ErrProviderUnavailable}
}

// NotifyingProvider returns Doc and closes Notify on first fetch. Safe for concurrent fetches.
type NotifyingProvider struct {
	Doc    scoreboard.Document
	Notify chan struct{}
	once   sync.Once
}

func (p *NotifyingProvider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	_ = ctx
	_ = league
	if p.Notify != nil {
		p.once.Do(func() { close(p.Notify) })
	}
	return p.Doc, nil
}

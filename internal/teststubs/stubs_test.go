package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/team-scores-service/internal/domain/games"
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{
		Docs: map[string]scoreboard.Document{"nfl": {Events: []scoreboard.Event{{Name: "g1"}}}},
		Errs: map[string]error{"mlb": err},
	}
	if _, got := p.FetchScoreboard(context.Background(), teams.LeagueEndpoint{Key: "mlb"}); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	doc, got := p.FetchScoreboard(context.Background(), teams.LeagueEndpoint{Key: "nfl"})
	if got != nil || len(doc.Events) != 1 {
		t.Fatalf("expected nfl document, got %+v err %v", doc, got)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
	if p.CallsFor("mlb") != 1 || p.CallsFor("nba") != 0 {
		t.Fatalf("unexpected per-league counts")
	}
}

func TestStubRendererRecordsCalls(t *testing.T) {
	r := &StubRenderer{}
	ctx := context.Background()
	r.ShowLoading(ctx, "lions")
	r.ShowSummary(ctx, "lions", games.GameSummary{ScoreLine: "x"})

	last, ok := r.Last("lions")
	if !ok || last.Intent != IntentSummary || last.Summary.ScoreLine != "x" {
		t.Fatalf("unexpected last call %+v", last)
	}
	if len(r.Calls()) != 2 {
		t.Fatalf("expected 2 calls")
	}
	r.Reset()
	if _, ok := r.Last("lions"); ok {
		t.Fatalf("expected reset to clear calls")
	}
}

func TestStubRendererPanicsOnRequest(t *testing.T) {
	r := &StubRenderer{PanicOn: "msu"}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	r.ShowSummary(context.Background(), "msu", games.GameSummary{})
}

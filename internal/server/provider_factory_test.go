package server

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/team-scores-service/internal/config"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
	"github.com/preston-bernstein/team-scores-service/internal/testutil"
)

func TestProviderFactoryBuildsConfiguredProvider(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"}, nil)
	if prov == nil {
		t.Fatalf("expected provider")
	}

	doc, err := prov.FetchScoreboard(context.Background(), teams.LeagueEndpoint{Key: "cfb"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(doc.Events) == 0 {
		t.Fatalf("expected fixture events through the wrapper")
	}
}

func TestProviderFactoryInstrumentsInjectedProvider(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.build(config.Config{}, testutil.ErrProvider{Err: errors.New("down")})

	if _, err := prov.FetchScoreboard(context.Background(), teams.LeagueEndpoint{Key: "mlb", URL: "http://x"}); err == nil {
		t.Fatalf("expected error passthrough")
	}
	if got := rec.Snapshot("mlb").Errors; got != 1 {
		t.Fatalf("expected error recorded, got %d", got)
	}
}

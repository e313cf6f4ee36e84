package poller

import (
	"context"
	"testing"

	"github.com/preston-bernstein/team-scores-service/internal/app/championship"
	"github.com/preston-bernstein/team-scores-service/internal/store"
	"github.com/preston-bernstein/team-scores-service/internal/testutil"
	"github.com/preston-bernstein/team-scores-service/internal/view"
)

func BenchmarkPollerRunCycle(b *testing.B) {
	doc := testutil.Document(
		testutil.Event("bench-1", "in", testutil.Home("DET", "3"), testutil.Away("CLE", "1")),
		testutil.Event("bench-2", "post", testutil.Home("GB", "17"), testutil.Away("CHI", "10")),
	)
	renderer := view.NewCardRenderer(nil, nil, store.NewMemoryStore())
	pl := New(testutil.GoodProvider{Doc: doc}, renderer, Config{
		Leagues:  testutil.Leagues(),
		Teams:    testutil.FollowedTeams(),
		Resolver: championship.NewResolver(championship.DefaultRules),
	}, nil, nil)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = pl.RunCycle(ctx)
	}
}

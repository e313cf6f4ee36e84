package games

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/testutil"
)

func TestFootballSituationAssembly(t *testing.T) {
	ev := footballEvent("in")
	comp, _ := ev.Competition()

	assert.Equal(t, "Q3 • 5:21 • 3rd & 4 • DET ball", FootballSituation(ev, comp))
}

func TestFootballSituationFieldPosition(t *testing.T) {
	ev := footballEvent("in")
	ev.Competitions[0].Situation.YardLineTerritory = "CAR"
	ev.Competitions[0].Situation.YardLine = scoreboard.Int(35)
	comp, _ := ev.Competition()

	assert.Equal(t, "Q3 • 5:21 • 3rd & 4 • DET ball • CAR 35", FootballSituation(ev, comp))
}

func TestFootballSituationOmitsPartialFieldPosition(t *testing.T) {
	ev := footballEvent("in")
	ev.Competitions[0].Situation.PossessionText = "DET 42"
	comp, _ := ev.Competition()
	assert.Equal(t, "Q3 • 5:21 • 3rd & 4 • DET ball", FootballSituation(ev, comp))

	ev.Competitions[0].Situation.YardLineTerritory = "CAR"
	comp, _ = ev.Competition()
	assert.Equal(t, "Q3 • 5:21 • 3rd & 4 • DET ball", FootballSituation(ev, comp), "territory without yard line")

	ev.Competitions[0].Situation.YardLineTerritory = ""
	ev.Competitions[0].Situation.YardLine = scoreboard.Int(42)
	comp, _ = ev.Competition()
	assert.Equal(t, "Q3 • 5:21 • 3rd & 4 • DET ball", FootballSituation(ev, comp), "yard line without territory")
}

func TestFootballSituationMatchesPossessionByEitherID(t *testing.T) {
	home := testutil.Home("DET", "24")
	home.ID = scoreboard.Str("100")
	home.Team.ID = scoreboard.Str("8")
	away := testutil.Away("CAR", "7")
	away.ID = scoreboard.Str("200")
	away.Team.ID = scoreboard.Str("29")

	for possession, want := range map[string]string{"100": "DET ball", "8": "DET ball", "29": "CAR ball", "200": "CAR ball", "999": ""} {
		comp := scoreboard.Competition{
			Competitors: []scoreboard.Competitor{home, away},
			Situation:   &scoreboard.Situation{Possession: scoreboard.Str(possession)},
		}
		assert.Equal(t, want, FootballSituation(scoreboard.Event{}, comp), "possession %s", possession)
	}
}

func TestFootballSituationOmitsAbsentPieces(t *testing.T) {
	comp := scoreboard.Competition{
		Competitors: []scoreboard.Competitor{testutil.Home("DET", "0"), testutil.Away("CAR", "0")},
		Situation:   &scoreboard.Situation{Down: scoreboard.Int(2)},
	}
	ev := scoreboard.Event{Status: scoreboard.Status{DisplayClock: "12:00"}}

	assert.Equal(t, "12:00", FootballSituation(ev, comp))
}

func TestFootballSituationWithoutSituationData(t *testing.T) {
	ev := footballEvent("in")
	ev.Competitions[0].Situation = nil
	comp, _ := ev.Competition()

	assert.Empty(t, FootballSituation(ev, comp))
}

func TestBaseballSituation(t *testing.T) {
	comp := scoreboard.Competition{Situation: &scoreboard.Situation{
		Inning:     scoreboard.Int(7),
		InningHalf: "bottom",
		Balls:      scoreboard.Int(2),
		Strikes:    scoreboard.Int(1),
		Outs:       scoreboard.Int(1),
		OnFirst:    scoreboard.Runner(true),
		OnSecond:   scoreboard.Runner(false),
		OnThird:    scoreboard.Runner(true),
	}}

	assert.Equal(t, "Bot 7 • B:2 S:1 • O:1 • 1-3", BaseballSituation(scoreboard.Event{}, comp))
}

func TestBaseballSituationHalfFromTopFlag(t *testing.T) {
	comp := scoreboard.Competition{Situation: &scoreboard.Situation{
		Inning:      scoreboard.Int(3),
		IsTopInning: scoreboard.Bool(true),
		Outs:        scoreboard.Int(0),
	}}
	assert.Equal(t, "Top 3 • O:0", BaseballSituation(scoreboard.Event{}, comp))

	comp.Situation.IsTopInning = scoreboard.Bool(false)
	assert.Equal(t, "Bot 3 • O:0", BaseballSituation(scoreboard.Event{}, comp))

	comp.Situation.IsTopInning = scoreboard.OptBool{}
	assert.Equal(t, "Bot 3 • O:0", BaseballSituation(scoreboard.Event{}, comp))
}

func TestBaseballSituationHalfIsAlwaysTopOrBot(t *testing.T) {
	tests := []struct {
		half  string
		isTop scoreboard.OptBool
		want  string
	}{
		{half: "Top", want: "Top 5 • O:1"},
		{half: "BOT", want: "Bot 5 • O:1"},
		{half: "Middle", want: "Bot 5 • O:1"},
		{half: "end", want: "Bot 5 • O:1"},
		{half: "Middle", isTop: scoreboard.Bool(true), want: "Top 5 • O:1"},
		{half: "1", want: "Bot 5 • O:1"},
		{want: "Bot 5 • O:1"},
	}
	for _, tt := range tests {
		comp := scoreboard.Competition{Situation: &scoreboard.Situation{
			Inning:      scoreboard.Int(5),
			InningHalf:  tt.half,
			IsTopInning: tt.isTop,
			Outs:        scoreboard.Int(1),
		}}
		assert.Equal(t, tt.want, BaseballSituation(scoreboard.Event{}, comp), "half %q", tt.half)
	}
}

func TestBaseballSituationEmpty(t *testing.T) {
	assert.Empty(t, BaseballSituation(scoreboard.Event{}, scoreboard.Competition{}))
	assert.Empty(t, BaseballSituation(scoreboard.Event{}, scoreboard.Competition{Situation: &scoreboard.Situation{}}))
}

func TestBasesCode(t *testing.T) {
	assert.Equal(t, "1-3", BasesCode(true, false, true))
	assert.Equal(t, "---", BasesCode(false, false, false))
	assert.Equal(t, "123", BasesCode(true, true, true))
	assert.Equal(t, "-2-", BasesCode(false, true, false))
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 5: "5th", 11: "11th"} {
		assert.Equal(t, want, Ordinal(n))
	}
}

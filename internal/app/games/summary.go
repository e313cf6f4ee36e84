package games

import (
	"fmt"
	"strings"

	domaingames "github.com/preston-bernstein/team-scores-service/internal/domain/games"
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

const (
	missingScore = "-"
	homeFallback = "HOME"
	awayFallback = "AWAY"
)

// Build derives the render payload for a located game. It is pure: the same
// inputs always produce the same summary.
func Build(ev scoreboard.Event, comp scoreboard.Competition, sport teams.SportKind) domaingames.GameSummary {
	status, detail := StatusOf(ev)

	situation := ""
	if status == domaingames.StatusLive {
		if format, ok := formatterFor(sport); ok {
			situation = format(ev, comp)
		}
	}

	text := situation
	if text == "" {
		text = detail
	}

	return domaingames.GameSummary{
		EventName: ev.Name,
		ScoreLine: ScoreLine(comp),
		Status:    status,
		Pill:      status.Pill(),
		PillClass: status.PillClass(),
		Detail:    detail,
		Situation: situation,
		Text:      text,
	}
}

// ScoreLine formats "<AWAY> <score> @ <HOME> <score>".
func ScoreLine(comp scoreboard.Competition) string {
	home, away := HomeAway(comp)
	return fmt.Sprintf("%s %s @ %s %s",
		abbreviationOr(away, awayFallback), scoreOf(away),
		abbreviationOr(home, homeFallback), scoreOf(home),
	)
}

// HomeAway resolves the two sides by their homeAway tags. Roles without a tag
// are filled from the remaining competitors in source order, home first.
// Either side is nil when the competition has too few competitors.
func HomeAway(comp scoreboard.Competition) (home, away *scoreboard.Competitor) {
	list := comp.Competitors
	used := make([]bool, len(list))
	for i := range list {
		switch strings.ToLower(list[i].HomeAway) {
		case "home":
			if home == nil {
				home, used[i] = &list[i], true
			}
		case "away":
			if away == nil {
				away, used[i] = &list[i], true
			}
		}
	}
	next := func() *scoreboard.Competitor {
		for i := range list {
			if !used[i] {
				used[i] = true
				return &list[i]
			}
		}
		return nil
	}
	if home == nil {
		home = next()
	}
	if away == nil {
		away = next()
	}
	return home, away
}

// StatusOf classifies the event and picks the shortest non-empty description.
func StatusOf(ev scoreboard.Event) (domaingames.GameStatus, string) {
	st := ev.Status.Type
	return domaingames.StatusFromState(st.State), shortestNonEmpty(st.ShortDetail, st.Detail, st.Description)
}

func shortestNonEmpty(values ...string) string {
	best := ""
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if best == "" || len(v) < len(best) {
			best = v
		}
	}
	return best
}

func abbreviationOr(c *scoreboard.Competitor, fallback string) string {
	if c == nil || c.Team.Abbreviation == "" {
		return fallback
	}
	return c.Team.Abbreviation
}

func scoreOf(c *scoreboard.Competitor) string {
	if c == nil || !c.Score.Present() {
		return missingScore
	}
	return strings.TrimSpace(c.Score.Value)
}

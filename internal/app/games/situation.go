package games

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// PieceSeparator joins the parts of a situation line.
const PieceSeparator = " • "

// SituationFormatter renders the live situation of a competition.
type SituationFormatter func(ev scoreboard.Event, comp scoreboard.Competition) string

// Sports without an entry have no situation line.
var situationFormatters = map[teams.SportKind]SituationFormatter{
	teams.SportFootball: FootballSituation,
	teams.SportBaseball: BaseballSituation,
}

func formatterFor(sport teams.SportKind) (SituationFormatter, bool) {
	f, ok := situationFormatters[sport]
	return f, ok
}

// FootballSituation renders period, clock, down and distance, possession and
// field position, skipping whatever is absent.
func FootballSituation(ev scoreboard.Event, comp scoreboard.Competition) string {
	sit := comp.Situation
	if sit == nil {
		return ""
	}

	pieces := make([]string, 0, 5)
	if p := ev.Status.Period; p.Valid && p.Value > 0 {
		pieces = append(pieces, "Q"+strconv.Itoa(p.Value))
	}
	if clock := strings.TrimSpace(ev.Status.DisplayClock); clock != "" {
		pieces = append(pieces, clock)
	}
	if sit.Down.Valid && sit.Down.Value > 0 && sit.Distance.Valid {
		pieces = append(pieces, fmt.Sprintf("%s & %d", Ordinal(sit.Down.Value), sit.Distance.Value))
	}
	if abbr := possessingTeam(comp, sit.Possession); abbr != "" {
		pieces = append(pieces, abbr+" ball")
	}
	if spot := fieldPosition(sit); spot != "" {
		pieces = append(pieces, spot)
	}
	return strings.Join(pieces, PieceSeparator)
}

// BaseballSituation renders inning, count, outs and the bases code,
// skipping whatever is absent.
func BaseballSituation(_ scoreboard.Event, comp scoreboard.Competition) string {
	sit := comp.Situation
	if sit == nil {
		return ""
	}

	pieces := make([]string, 0, 4)
	if sit.Inning.Valid {
		pieces = append(pieces, inningHalf(sit)+" "+strconv.Itoa(sit.Inning.Value))
	}
	if sit.Balls.Valid && sit.Strikes.Valid {
		pieces = append(pieces, fmt.Sprintf("B:%d S:%d", sit.Balls.Value, sit.Strikes.Value))
	}
	if sit.Outs.Valid {
		pieces = append(pieces, fmt.Sprintf("O:%d", sit.Outs.Value))
	}
	if sit.OnFirst.Valid || sit.OnSecond.Valid || sit.OnThird.Valid {
		pieces = append(pieces, BasesCode(sit.OnFirst.Value, sit.OnSecond.Value, sit.OnThird.Value))
	}
	return strings.Join(pieces, PieceSeparator)
}

// Ordinal renders a down number: 1st, 2nd, 3rd, 4th, otherwise "<n>th".
func Ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	default:
		return strconv.Itoa(n) + "th"
	}
}

// BasesCode renders first, second and third base as "1", "2", "3" when
// occupied and "-" when empty, e.g. "1-3".
func BasesCode(first, second, third bool) string {
	code := []byte("---")
	if first {
		code[0] = '1'
	}
	if second {
		code[1] = '2'
	}
	if third {
		code[2] = '3'
	}
	return string(code)
}

// possessingTeam matches the possession identifier against both the
// competitor id and the team id; the upstream populates either.
func possessingTeam(comp scoreboard.Competition, possession scoreboard.FlexString) string {
	if !possession.Present() {
		return ""
	}
	want := strings.TrimSpace(possession.Value)
	for _, c := range comp.Competitors {
		if (c.ID.Present() && strings.TrimSpace(c.ID.Value) == want) ||
			(c.Team.ID.Present() && strings.TrimSpace(c.Team.ID.Value) == want) {
			return c.Team.Abbreviation
		}
	}
	return ""
}

func fieldPosition(sit *scoreboard.Situation) string {
	territory := strings.TrimSpace(sit.YardLineTerritory)
	if territory == "" || !sit.YardLine.Valid {
		return ""
	}
	return fmt.Sprintf("%s %d", territory, sit.YardLine.Value)
}

// inningHalf is always Top or Bot. An unrecognised half falls back to the
// top-of-inning flag, and to Bot when that is absent too.
func inningHalf(sit *scoreboard.Situation) string {
	switch strings.ToLower(strings.TrimSpace(sit.InningHalf)) {
	case "top":
		return "Top"
	case "bot", "bottom":
		return "Bot"
	}
	if sit.IsTopInning.Valid && sit.IsTopInning.Value {
		return "Top"
	}
	return "Bot"
}

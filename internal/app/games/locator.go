package games

import "github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"

// Match is a located game: the event and its authoritative competition.
type Match struct {
	Event       scoreboard.Event
	Competition scoreboard.Competition
}

// Locate returns the first event, in document order, whose first competition
// has a competitor with the exact abbreviation. A false result means the team
// has no game in this scoreboard window; it is not an error.
func Locate(doc scoreboard.Document, abbr string) (Match, bool) {
	if abbr == "" {
		return Match{}, false
	}
	for _, ev := range doc.Events {
		comp, ok := ev.Competition()
		if !ok {
			continue
		}
		for _, c := range comp.Competitors {
			if c.Team.Abbreviation == abbr {
				return Match{Event: ev, Competition: comp}, true
			}
		}
	}
	return Match{}, false
}

package testutil

import (
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// Home builds a home competitor. An empty score is left absent; team and
// competitor ids default to "<abbr>-id".
func Home(abbr, score string) scoreboard.Competitor {
	return competitor("home", abbr, score)
}

// Away builds an away competitor with the same defaults as Home.
func Away(abbr, score string) scoreboard.Competitor {
	return competitor("away", abbr, score)
}

func competitor(side, abbr, score string) scoreboard.Competitor {
	c := scoreboard.Competitor{
		ID:       scoreboard.Str(abbr + "-id"),
		HomeAway: side,
		Team:     scoreboard.Team{ID: scoreboard.Str(abbr + "-id"), Abbreviation: abbr},
	}
	if score != "" {
		c.Score = scoreboard.Str(score)
	}
	return c
}

// Event builds an event with one competition holding the given competitors.
func Event(id, state string, competitors ...scoreboard.Competitor) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str(id),
		Name:      id,
		ShortName: id,
		Status: scoreboard.Status{
			Type: scoreboard.StatusType{State: state},
		},
		Competitions: []scoreboard.Competition{{Competitors: competitors}},
	}
}

// Document wraps events into a scoreboard document.
func Document(events ...scoreboard.Event) scoreboard.Document {
	return scoreboard.Document{Events: events}
}

// Leagues returns a football and a baseball league endpoint keyed "nfl" and "mlb".
func Leagues() []teams.LeagueEndpoint {
	return []teams.LeagueEndpoint{
		{Key: "mlb", URL: "http://scores.test/baseball/mlb/scoreboard"},
		{Key: "nfl", URL: "http://scores.test/football/nfl/scoreboard"},
	}
}

// FollowedTeams returns one baseball team and one football team on Leagues.
func FollowedTeams() []teams.FollowedTeam {
	return []teams.FollowedTeam{
		{Abbreviation: "DET", ViewKey: "tigers", League: "mlb", Sport: teams.SportBaseball},
		{Abbreviation: "DET", ViewKey: "lions", League: "nfl", Sport: teams.SportFootball},
	}
}

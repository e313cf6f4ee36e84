package config

import (
	"strings"

	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// League keys used by the default team set and the championship rules.
const (
	LeagueMLB = "mlb"
	LeagueNFL = "nfl"
	LeagueCFB = "cfb"
	LeagueNBA = "nba"
	LeagueNHL = "nhl"
)

// leaguePaths are scoreboard paths relative to the API base URL, in display order.
var leaguePaths = []struct {
	key  string
	path string
}{
	{LeagueMLB, "/baseball/mlb/scoreboard"},
	{LeagueNFL, "/football/nfl/scoreboard"},
	{LeagueCFB, "/football/college-football/scoreboard?groups=80"},
	{LeagueNBA, "/basketball/nba/scoreboard"},
	{LeagueNHL, "/hockey/nhl/scoreboard"},
}

// DefaultLeagues returns the known scoreboard endpoints rooted at baseURL.
func DefaultLeagues(baseURL string) []teams.LeagueEndpoint {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultESPNBaseURL
	}
	out := make([]teams.LeagueEndpoint, 0, len(leaguePaths))
	for _, lp := range leaguePaths {
		out = append(out, teams.LeagueEndpoint{Key: lp.key, URL: base + lp.path})
	}
	return out
}

// DefaultTeams returns the followed teams. View keys double as card ids.
func DefaultTeams() []teams.FollowedTeam {
	return []teams.FollowedTeam{
		{Abbreviation: "DET", ViewKey: "tigers", League: LeagueMLB, Sport: teams.SportBaseball},
		{Abbreviation: "SF", ViewKey: "giants", League: LeagueMLB, Sport: teams.SportBaseball},
		{Abbreviation: "DET", ViewKey: "lions", League: LeagueNFL, Sport: teams.SportFootball},
		{Abbreviation: "MICH", ViewKey: "michigan", League: LeagueCFB, Sport: teams.SportFootball},
		{Abbreviation: "MSU", ViewKey: "msu", League: LeagueCFB, Sport: teams.SportFootball},
	}
}

package teams

// SportKind selects which live situation formatter applies to a team.
type SportKind string

const (
	SportFootball SportKind = "football"
	SportBaseball SportKind = "baseball"
	SportOther    SportKind = "other"
)

// ParseSportKind maps free text to a SportKind, defaulting to SportOther.
func ParseSportKind(raw string) SportKind {
	switch SportKind(raw) {
	case SportFootball, SportBaseball:
		return SportKind(raw)
	default:
		return SportOther
	}
}

// LeagueEndpoint identifies one scoreboard data source.
type LeagueEndpoint struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// FollowedTeam is a team the service tracks and renders into its own view.
// Several teams may share a league.
type FollowedTeam struct {
	Abbreviation string    `json:"abbreviation"`
	ViewKey      string    `json:"viewKey"`
	League       string    `json:"league"`
	Sport        SportKind `json:"sport"`
}

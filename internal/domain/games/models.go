package games

// GameStatus is the tri-state lifecycle of a game as shown on a card.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// StatusFromState maps the upstream state field. The mapping is total:
// anything other than "in" or "post" is scheduled.
func StatusFromState(state string) GameStatus {
	switch state {
	case "in":
		return StatusLive
	case "post":
		return StatusFinal
	default:
		return StatusScheduled
	}
}

// Pill returns the badge label for the status.
func (s GameStatus) Pill() string {
	switch s {
	case StatusLive:
		return "Live"
	case StatusFinal:
		return "Final"
	default:
		return "Scheduled"
	}
}

// PillClass returns the CSS class list for the status badge.
func (s GameStatus) PillClass() string {
	return PillClassBase + " " + string(s)
}

// PillClassBase is the class every status badge carries.
const PillClassBase = "status-pill"

// GameSummary is the per-team render payload derived on every refresh cycle.
type GameSummary struct {
	EventName string     `json:"eventName,omitempty"`
	ScoreLine string     `json:"scoreLine"`
	Status    GameStatus `json:"status"`
	Pill      string     `json:"pill"`
	PillClass string     `json:"pillClass"`
	Detail    string     `json:"detail"`
	Situation string     `json:"situation"`
	// Text is what the card shows under the pill: the situation when one
	// applies, otherwise the status detail.
	Text string `json:"text"`
}

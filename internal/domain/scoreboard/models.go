package scoreboard

// Document is one league's scoreboard as returned by the upstream API.
// Every field is optional; absent values decode to their zero value.
type Document struct {
	Events []Event `json:"events"`
}

// Event is one scheduled, live, or completed contest.
type Event struct {
	ID           FlexString    `json:"id"`
	Date         ESPNTime      `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Status       Status        `json:"status"`
	Competitions []Competition `json:"competitions"`
}

// Competition returns the authoritative (first) competition of the event.
func (e Event) Competition() (Competition, bool) {
	if len(e.Competitions) == 0 {
		return Competition{}, false
	}
	return e.Competitions[0], true
}

// Status carries the game clock and the upstream state classification.
type Status struct {
	Period       OptInt     `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Type         StatusType `json:"type"`
}

// StatusType holds the state field ("pre", "in", "post") and its descriptions.
type StatusType struct {
	State       string `json:"state"`
	ShortDetail string `json:"shortDetail"`
	Detail      string `json:"detail"`
	Description string `json:"description"`
}

// Competition is the head-to-head pairing and its live state.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
	Situation   *Situation   `json:"situation,omitempty"`
}

// Competitor is one side of a competition.
type Competitor struct {
	ID       FlexString `json:"id"`
	HomeAway string     `json:"homeAway"`
	Score    FlexString `json:"score"`
	Team     Team       `json:"team"`
}

// Team is the competitor's team reference.
type Team struct {
	ID           FlexString `json:"id"`
	Abbreviation string     `json:"abbreviation"`
}

// Situation is the sport-specific live state. Football fields and baseball
// fields share one shape because the upstream payload does.
type Situation struct {
	// Football.
	Down              OptInt     `json:"down"`
	Distance          OptInt     `json:"distance"`
	YardLine          OptInt     `json:"yardLine"`
	YardLineTerritory string     `json:"yardLineTerritory"`
	Possession        FlexString `json:"possession"`
	PossessionText    string     `json:"possessionText"`

	// Baseball.
	Inning      OptInt   `json:"inning"`
	InningHalf  string   `json:"inningHalf"`
	IsTopInning OptBool  `json:"isTopInning"`
	Balls       OptInt   `json:"balls"`
	Strikes     OptInt   `json:"strikes"`
	Outs        OptInt   `json:"outs"`
	OnFirst     Occupied `json:"onFirst"`
	OnSecond    Occupied `json:"onSecond"`
	OnThird     Occupied `json:"onThird"`
}

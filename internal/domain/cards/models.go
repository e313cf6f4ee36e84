package cards

import (
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/games"
)

// State is the display state of a card.
type State string

const (
	StateLoading State = "loading"
	StateIdle    State = "idle"
	StateSummary State = "summary"
	StateError   State = "error"
)

const (
	// ChampionshipViewKey is the view key of the title-game card.
	ChampionshipViewKey = "champ"

	loadingLine = "Loading..."
	errorLine   = "Error loading scores"
	loadingPill = "..."
	errorPill   = "Error"
	idlePill    = "Idle"
)

// Championship identifies the title game shown on the championship card.
type Championship struct {
	League    string `json:"league"`
	Logo      string `json:"logo"`
	EventName string `json:"eventName"`
}

// Card is what a view renders for one view key. Error cards never carry
// upstream error text.
type Card struct {
	ViewKey      string             `json:"viewKey"`
	State        State              `json:"state"`
	Visible      bool               `json:"visible"`
	Line         string             `json:"line"`
	Pill         string             `json:"pill"`
	PillClass    string             `json:"pillClass"`
	Text         string             `json:"text"`
	Summary      *games.GameSummary `json:"summary,omitempty"`
	Championship *Championship      `json:"championship,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// Loading builds the transitional card shown while a cycle fetches.
func Loading(viewKey string, at time.Time) Card {
	return Card{
		ViewKey:   viewKey,
		State:     StateLoading,
		Visible:   true,
		Line:      loadingLine,
		Pill:      loadingPill,
		PillClass: games.PillClassBase,
		UpdatedAt: at,
	}
}

// Idle builds the hidden card for a team with no game in the scoreboard window.
func Idle(viewKey string, at time.Time) Card {
	return Card{
		ViewKey:   viewKey,
		State:     StateIdle,
		Pill:      idlePill,
		PillClass: games.PillClassBase,
		UpdatedAt: at,
	}
}

// Error builds the uniform error card.
func Error(viewKey string, at time.Time) Card {
	return Card{
		ViewKey:   viewKey,
		State:     StateError,
		Visible:   true,
		Line:      errorLine,
		Pill:      errorPill,
		PillClass: games.PillClassBase,
		UpdatedAt: at,
	}
}

// FromSummary builds a visible card for a located game.
func FromSummary(viewKey string, summary games.GameSummary, at time.Time) Card {
	s := summary
	return Card{
		ViewKey:   viewKey,
		State:     StateSummary,
		Visible:   true,
		Line:      summary.ScoreLine,
		Pill:      summary.Pill,
		PillClass: summary.PillClass,
		Text:      summary.Text,
		Summary:   &s,
		UpdatedAt: at,
	}
}

// FromChampionship builds the championship card.
func FromChampionship(champ Championship, summary games.GameSummary, at time.Time) Card {
	card := FromSummary(ChampionshipViewKey, summary, at)
	c := champ
	card.Championship = &c
	return card
}

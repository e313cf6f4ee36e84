package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// Provider returns static scoreboards useful for local development without network access.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchScoreboard returns a deterministic scoreboard for known league keys and
// an empty one otherwise.
func (p *Provider) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	if err := ctx.Err(); err != nil {
		return scoreboard.Document{}, err
	}
	start := p.now().UTC().Truncate(time.Hour)

	switch league.Key {
	case "mlb":
		return scoreboard.Document{Events: []scoreboard.Event{liveBaseball(start), scheduledBaseball(start)}}, nil
	case "nfl":
		return scoreboard.Document{Events: []scoreboard.Event{liveFootball(start), titleGame(start)}}, nil
	case "cfb":
		return scoreboard.Document{Events: []scoreboard.Event{finalCollege(start)}}, nil
	default:
		return scoreboard.Document{}, nil
	}
}

func competitor(id, homeAway, abbr, score string) scoreboard.Competitor {
	c := scoreboard.Competitor{
		ID:       scoreboard.Str(id),
		HomeAway: homeAway,
		Team: scoreboard.Team{
			ID:           scoreboard.Str(id),
			Abbreviation: abbr,
		},
	}
	if score != "" {
		c.Score = scoreboard.Str(score)
	}
	return c
}

func liveBaseball(start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str("fixture-mlb-1"),
		Date:      scoreboard.ESPNTime{Time: start.Add(-2 * time.Hour)},
		Name:      "Cleveland Guardians at Detroit Tigers",
		ShortName: "CLE @ DET",
		Status: scoreboard.Status{
			Period: scoreboard.Int(7),
			Type:   scoreboard.StatusType{State: "in", ShortDetail: "Top 7th", Detail: "Top of the 7th"},
		},
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				competitor("6", "home", "DET", "4"),
				competitor("5", "away", "CLE", "2"),
			},
			Situation: &scoreboard.Situation{
				Inning:     scoreboard.Int(7),
				InningHalf: "top",
				Balls:      scoreboard.Int(2),
				Strikes:    scoreboard.Int(1),
				Outs:       scoreboard.Int(1),
				OnFirst:    scoreboard.Runner(true),
				OnSecond:   scoreboard.Runner(false),
				OnThird:    scoreboard.Runner(true),
			},
		}},
	}
}

func scheduledBaseball(start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str("fixture-mlb-2"),
		Date:      scoreboard.ESPNTime{Time: start.Add(3 * time.Hour)},
		Name:      "Los Angeles Dodgers at San Francisco Giants",
		ShortName: "LAD @ SF",
		Status: scoreboard.Status{
			Type: scoreboard.StatusType{State: "pre", ShortDetail: "7:15 PM", Detail: "Scheduled 7:15 PM"},
		},
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				competitor("26", "home", "SF", ""),
				competitor("19", "away", "LAD", ""),
			},
		}},
	}
}

func liveFootball(start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str("fixture-nfl-1"),
		Date:      scoreboard.ESPNTime{Time: start.Add(-time.Hour)},
		Name:      "Detroit Lions at Green Bay Packers",
		ShortName: "DET @ GB",
		Status: scoreboard.Status{
			Period:       scoreboard.Int(3),
			DisplayClock: "7:42",
			Type:         scoreboard.StatusType{State: "in", ShortDetail: "7:42 - 3rd"},
		},
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				competitor("9", "home", "GB", "17"),
				competitor("8", "away", "DET", "24"),
			},
			Situation: &scoreboard.Situation{
				Down:              scoreboard.Int(3),
				Distance:          scoreboard.Int(4),
				YardLine:          scoreboard.Int(35),
				YardLineTerritory: "GB",
				Possession:        scoreboard.Str("8"),
			},
		}},
	}
}

func titleGame(start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str("fixture-nfl-2"),
		Date:      scoreboard.ESPNTime{Time: start.Add(-26 * time.Hour)},
		Name:      "Super Bowl LIX",
		ShortName: "KC VS PHI",
		Status: scoreboard.Status{
			Type: scoreboard.StatusType{State: "post", ShortDetail: "Final", Detail: "Final", Description: "Final"},
		},
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				competitor("12", "home", "KC", "22"),
				competitor("21", "away", "PHI", "40"),
			},
		}},
	}
}

func finalCollege(start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:        scoreboard.Str("fixture-cfb-1"),
		Date:      scoreboard.ESPNTime{Time: start.Add(-20 * time.Hour)},
		Name:      "Michigan State Spartans at Michigan Wolverines",
		ShortName: "MSU @ MICH",
		Status: scoreboard.Status{
			Type: scoreboard.StatusType{State: "post", ShortDetail: "Final", Detail: "Final"},
		},
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				competitor("130", "home", "MICH", "24"),
				competitor("127", "away", "MSU", "17"),
			},
		}},
	}
}
